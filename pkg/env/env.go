package env

import "os"

type Env = string

const (
  DevelopmentEnv Env = "DEV"
  ProductionEnv  Env = "PROD"
)

func AppEnv() Env {
  return os.Getenv("ENV")
}

func IsProduction() bool {
  return AppEnv() == ProductionEnv
}
