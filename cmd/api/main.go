package main

import (
	"log"
	"os"
	"rebalancer/cmd"

	"go.uber.org/zap"
)

func main() {
	zap.S().Infof("starting api, commit %s", os.Getenv("commit_hash"))

	deps, err := cmd.InitializeDependencies(os.Getenv("REBALANCER_CONFIG"))
	if err != nil {
		log.Fatal(err)
	}
	defer cmd.CloseDependencies(deps)

	err = deps.ApiHandler.StartApi(deps.Config.Port)
	if err != nil {
		log.Fatal(err)
	}
}
