package main

import (
	"github.com/bwmarrin/snowflake"
	"github.com/smallbiznis/faktur/internal/clock"
	"github.com/smallbiznis/faktur/internal/company"
	"github.com/smallbiznis/faktur/internal/config"
	"github.com/smallbiznis/faktur/internal/logger"
	"github.com/smallbiznis/faktur/internal/migration"
	"github.com/smallbiznis/faktur/internal/order"
	"github.com/smallbiznis/faktur/internal/product"
	pdfprovider "github.com/smallbiznis/faktur/internal/providers/pdf"
	"github.com/smallbiznis/faktur/internal/server"
	"github.com/smallbiznis/faktur/pkg/db"
	"go.uber.org/fx"
)

func main() {
	app := fx.New(
		config.Module,
		logger.Module,
		fx.Provide(RegisterSnowflake),
		db.Module,
		migration.Module,
		clock.Module,

		company.Module,
		product.Module,
		order.Module,
		pdfprovider.Module,

		server.Module,
	)
	app.Run()
}

func RegisterSnowflake() *snowflake.Node {
	node, err := snowflake.NewNode(1)
	if err != nil {
		panic(err)
	}
	return node
}
