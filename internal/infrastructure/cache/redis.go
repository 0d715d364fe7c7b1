// Package cache implementa el cache opcional de consultas RUC sobre Redis.
// Si no hay Redis configurado la aplicación funciona igual, solo que cada
// consulta golpea el API de SUNAT.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/bsalazar/descansos-api/internal/domain/entity"
)

// NewRedis conecta a Redis y verifica la conexión con un ping.
func NewRedis(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis: ping %s: %w", addr, err)
	}
	return client, nil
}

// RucCache guarda respuestas del padrón SUNAT con TTL.
type RucCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRucCache construye el cache con el TTL indicado.
func NewRucCache(client *redis.Client, ttl time.Duration) *RucCache {
	return &RucCache{client: client, ttl: ttl}
}

func clave(ruc string) string {
	return "sunat:ruc:" + ruc
}

// Obtener devuelve los datos cacheados del RUC, o nil si no están.
func (c *RucCache) Obtener(ctx context.Context, ruc string) (*entity.DatosRUC, error) {
	raw, err := c.client.Get(ctx, clave(ruc)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("cache: get %s: %w", ruc, err)
	}

	var datos entity.DatosRUC
	if err := json.Unmarshal(raw, &datos); err != nil {
		// Entrada corrupta: se descarta y se vuelve a consultar.
		_ = c.client.Del(ctx, clave(ruc)).Err()
		return nil, nil
	}
	return &datos, nil
}

// Guardar cachea los datos del RUC.
func (c *RucCache) Guardar(ctx context.Context, datos *entity.DatosRUC) error {
	raw, err := json.Marshal(datos)
	if err != nil {
		return fmt.Errorf("cache: marshal %s: %w", datos.RUC, err)
	}
	if err := c.client.Set(ctx, clave(datos.RUC), raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("cache: set %s: %w", datos.RUC, err)
	}
	return nil
}
