package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/Alphawga/insightFlow/infrastructure/database/postgres"
	"github.com/Alphawga/insightFlow/internal/config"
	"github.com/Alphawga/insightFlow/pkg/log"
)

const usage = `uso: migrate [comando] [argumentos]

comandos:
  up           aplica todas as migrações pendentes
  up-to V     aplica até a versão V
  down         reverte a última migração
  down-to V   reverte até a versão V
  redo         reverte e reaplica a última migração
  reset        reverte todas as migrações
  status       lista as migrações e seu estado
  version      mostra a versão atual do banco
`

func main() {
	flag.Usage = func() { fmt.Fprint(os.Stderr, usage) }
	flag.Parse()

	command := "up"
	var args []string
	if flag.NArg() > 0 {
		command = flag.Arg(0)
		args = flag.Args()[1:]
	}

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}
	log.Setup(cfg.App.LogLevel)

	ctx := context.Background()

	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}
	defer conn.Close()

	logrus.WithField("command", command).Info("Executando migração")

	if err := conn.RunMigration(ctx, command, args...); err != nil {
		logrus.WithError(err).Fatal("Erro ao executar migração")
	}

	logrus.WithField("command", command).Info("Migração concluída")
}
