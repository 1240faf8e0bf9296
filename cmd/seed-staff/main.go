// Command seed-staff creates one staff member in the configured store.
//
//	seed-staff -name "Ana Souza" -role cashier -pin 2468
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"cafeteria-admin/internal/bootstrap"
	"cafeteria-admin/internal/config"
	"cafeteria-admin/internal/model"
	"cafeteria-admin/internal/service"

	"github.com/rs/zerolog/log"
)

func main() {
	name := flag.String("name", "", "staff member name")
	role := flag.String("role", "", "staff role, e.g. cashier, cook, manager")
	pin := flag.String("pin", "", "login PIN, 4 to 8 characters")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	bootstrap.SetupLogger(cfg)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	staff, err := run(ctx, cfg, &service.CreateStaffRequest{Name: *name, Role: *role, PIN: *pin})
	cancel()

	if err != nil {
		var verr *service.ValidationError
		if errors.As(err, &verr) {
			for field, tag := range verr.Fields {
				fmt.Fprintf(os.Stderr, "invalid -%s: %s\n", field, tag)
			}
			flag.Usage()
			os.Exit(2)
		}
		log.Fatal().Err(err).Msg("failed to create staff")
	}

	log.Info().Str("id", staff.ID).Str("name", staff.Name).Str("role", staff.Role).Msg("✅ staff created")
}

// run opens the store, creates the staff member and closes the store again
// whatever the outcome. The caller decides how to exit.
func run(ctx context.Context, cfg *config.Config, req *service.CreateStaffRequest) (*model.Staff, error) {
	store, err := bootstrap.OpenStore(ctx, cfg)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := store.Close(context.Background()); cerr != nil {
			log.Warn().Err(cerr).Msg("store close")
		}
	}()

	staffService := service.NewStaffService(store.Staff, service.NewPINAuthenticator(store.Staff))
	return staffService.CreateStaff(ctx, req)
}
