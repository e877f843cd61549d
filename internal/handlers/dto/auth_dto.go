package dto

// AuthRequest representa as credenciais de login
type AuthRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// TokenResponse contém o token de acesso emitido
type TokenResponse struct {
	Token string `json:"token"`
}

// HealthResponse representa o estado do serviço
type HealthResponse struct {
	Status   string `json:"status"`
	Env      string `json:"env,omitempty"`
	Database string `json:"database"`
}
