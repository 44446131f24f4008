package main

import (
	"fmt"
	"os"

	"github.com/QuangTung97/reva-click/config"
	"github.com/QuangTung97/reva-click/pkg/migration"
)

func main() {
	conf := config.Load()
	cmd := migration.MigrateCommand(conf.MySQL.DSN())
	err := cmd.Execute()
	if err != nil {
		fmt.Println("[ERROR]", err)
		os.Exit(1)
	}
}
