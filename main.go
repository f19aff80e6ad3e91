// Package main is the entry point of miru.
package main

import (
	"time"

	"github.com/miru-cli/miru/cmd"
	"github.com/miru-cli/miru/config"
	"github.com/miru-cli/miru/internal/cache"
	"github.com/miru-cli/miru/key"
	"github.com/miru-cli/miru/log"
	"github.com/miru-cli/miru/where"
	"github.com/samber/lo"
	"github.com/spf13/viper"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())

	if viper.GetBool(key.APICache) {
		go pruneResponses()
	}

	cmd.Execute()
}

func pruneResponses() {
	ttl := time.Duration(viper.GetInt(key.APICacheTTL)) * time.Minute
	removed, err := cache.New(where.Responses(), ttl).Prune()
	if err != nil {
		log.Warnf("prune cached responses: %s", err)
		return
	}

	if removed > 0 {
		log.Debugf("pruned %d cached responses", removed)
	}
}
