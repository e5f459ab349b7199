package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"

	orderv1 "github.com/dwikikusuma/storefront/api/gen/order/v1"
	"github.com/dwikikusuma/storefront/internal/bootstrap"
	"github.com/dwikikusuma/storefront/pkg/config"
)

// env carries what commands need. Tests swap the constructors.
type env struct {
	cfg config.Config
	log *slog.Logger

	openBackend func() (*bootstrap.Backend, error)
	dialOrders  func(addr string) (orderv1.OrderServiceClient, io.Closer, error)
}

func newEnv(cfg config.Config, log *slog.Logger) *env {
	return &env{
		cfg:         cfg,
		log:         log,
		openBackend: func() (*bootstrap.Backend, error) { return bootstrap.OpenBackend(cfg, log) },
		dialOrders: func(addr string) (orderv1.OrderServiceClient, io.Closer, error) {
			conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
			if err != nil {
				return nil, nil, err
			}
			return orderv1.NewOrderServiceClient(conn), conn, nil
		},
	}
}

// services opens the backend and builds the application services over it.
func (e *env) services() (*bootstrap.Services, func(), error) {
	b, err := e.openBackend()
	if err != nil {
		return nil, nil, err
	}
	svc := bootstrap.NewServices(b, e.cfg, nil, nil, e.log)
	return svc, func() { _ = b.Close() }, nil
}

func newRootCmd(e *env) *cobra.Command {
	root := &cobra.Command{
		Use:           "storefrontctl",
		Short:         "Operate the storefront: schema, catalog, orders and reconciliation review",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(migrateCmd(e))
	root.AddCommand(seedCmd(e))
	root.AddCommand(orderCmd(e))
	root.AddCommand(conflictsCmd(e))
	return root
}

// printJSON writes m with proto field names, indented for terminals.
func printJSON(w io.Writer, m proto.Message) error {
	raw, err := protojson.MarshalOptions{UseProtoNames: true}.Marshal(m)
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		return err
	}
	buf.WriteByte('\n')
	_, err = buf.WriteTo(w)
	return err
}

func withTimeout(cmd *cobra.Command, e *env) (context.Context, context.CancelFunc) {
	return context.WithTimeout(cmd.Context(), 4*e.cfg.DBTimeout)
}

func requirePostgres(e *env) error {
	if e.cfg.StoreBackend != config.BackendPostgres {
		return fmt.Errorf("this command needs STORE_BACKEND=postgres, got %q", e.cfg.StoreBackend)
	}
	return nil
}
