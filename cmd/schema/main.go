package main

import (
  "encoding/json"
  "os"

  log "github.com/sirupsen/logrus"
  "shoplake/internal/schema"
  "shoplake/pkg/logger"
)

func main() {
  logger.Init()

  encoder := json.NewEncoder(os.Stdout)
  encoder.SetIndent("", "  ")

  if err := encoder.Encode(schema.Types()); err != nil {
    log.Fatalf("schema types encode: %v", err)
  }
}
