package entity

// DatosRUC son los datos de una empresa en el padrón SUNAT, tal como los
// devuelve la consulta por RUC. Sirven para precargar el alta de empresas.
type DatosRUC struct {
	RUC             string `json:"ruc"`
	RazonSocial     string `json:"razon_social"`
	NombreComercial string `json:"nombre_comercial"`
	Direccion       string `json:"direccion"`
	Distrito        string `json:"distrito"`
	Provincia       string `json:"provincia"`
	Departamento    string `json:"departamento"`
	EstadoSUNAT     string `json:"estado"`
	CondicionSUNAT  string `json:"condicion"`
}
