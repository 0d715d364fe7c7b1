package dto

// LoginRequest body para POST /auth/login.
type LoginRequest struct {
	Correo string `json:"correo"`
	Clave  string `json:"clave"`
}

// LoginResponse respuesta de login: token Bearer y datos del usuario.
type LoginResponse struct {
	Token   string          `json:"token"`
	Usuario UsuarioResponse `json:"usuario"`
}
