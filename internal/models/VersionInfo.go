package models

type VersionInfo struct {
	Version     string `json:"version" example:"1.0.0"`
	GitSha      string `json:"gitSha" example:"abc123"`
	BuildDate   string `json:"buildDate" example:"2024-01-01"`
	Environment string `json:"environment" example:"Production"`
}
