package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/studiobela/salon-booking/internal/audit"
	"github.com/studiobela/salon-booking/internal/config"
	dbpkg "github.com/studiobela/salon-booking/internal/db"
	infraRepo "github.com/studiobela/salon-booking/internal/infra/repository"
	ucBooking "github.com/studiobela/salon-booking/internal/usecase/booking"
)

func newRootCmd() *cobra.Command {
	var (
		from  string
		to    string
		times string
	)

	c := &cobra.Command{
		Use:   "seed",
		Short: "Gera a grade de horários do salão para um intervalo de datas",
		Long: "Cria um horário 'available' para cada dia do intervalo e cada " +
			"hora da grade diária. Chaves já existentes ficam intocadas, então " +
			"o comando pode ser reexecutado sem duplicar nem sobrescrever reservas.",
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = godotenv.Load()

			cfg := config.Load()
			db := dbpkg.NewDB(cfg)

			repo := infraRepo.NewSlotGormRepository(db)
			auditDispatcher := audit.NewDispatcher(audit.New(db))

			uc := ucBooking.NewSeedSlots(repo, nil, auditDispatcher)

			dailyTimes := splitTimes(times)

			created, err := uc.Execute(context.Background(), ucBooking.SeedSlotsInput{
				StartDate: from,
				EndDate:   to,
				Times:     dailyTimes,
			})
			if err != nil {
				return err
			}

			fmt.Printf("created %d slots (%s..%s x %d times)\n",
				created, from, to, len(dailyTimes))
			return nil
		},
	}

	c.Flags().StringVar(&from, "from", "", "data inicial (YYYY-MM-DD)")
	c.Flags().StringVar(&to, "to", "", "data final, inclusiva (YYYY-MM-DD)")
	c.Flags().StringVar(&times, "times", "09:00,10:00,11:00,14:00,15:00,16:00",
		"grade diária de horários, separada por vírgula (HH:mm)")

	_ = c.MarkFlagRequired("from")
	_ = c.MarkFlagRequired("to")

	return c
}

func splitTimes(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
