package app

import (
	"context"
	"errors"
	"time"

	"github.com/m04kA/FDL-AtelierService/internal/usecase/book_appointment"
	"github.com/m04kA/FDL-AtelierService/pkg/types"
)

// stageDelay пауза между косметическими этапами подтверждения
const stageDelay = 400 * time.Millisecond

// viewBooking трехшаговый мастер записи на визит: выбор даты и времени,
// подтверждение контактов, фиксация брони.
func (a *App) viewBooking(ctx context.Context) {
	a.printf("\n── Agendar Visita ──────────────────────\n")

	catalog := a.availability.ListUpcoming(ctx, a.clock())
	if len(catalog.Entries) == 0 {
		a.printf("Não há horários disponíveis no momento. Volte em breve.\n")
		a.view = ViewHome
		return
	}

	wizard := book_appointment.NewWizard(a.booking)

	a.printf("\nDatas disponíveis:\n")
	for i, entry := range catalog.Entries {
		a.printf("  %d. %s (%d horários)\n", i+1, entry.DisplayDate, len(entry.Times))
	}
	idx, ok := a.readIndex("Escolha a data (0 cancela): ", len(catalog.Entries))
	if !ok {
		a.view = ViewHome
		return
	}
	entry := catalog.Entries[idx-1]
	if err := wizard.SelectDate(entry.Date); err != nil {
		a.printf("Data inválida.\n")
		a.view = ViewHome
		return
	}

	a.printf("\nHorários em %s:\n", entry.DisplayDate)
	for i, t := range entry.Times {
		a.printf("  %d. %s\n", i+1, t)
	}
	idx, ok = a.readIndex("Escolha o horário (0 cancela): ", len(entry.Times))
	if !ok {
		a.view = ViewHome
		return
	}
	if err := wizard.SelectTime(types.TimeString(entry.Times[idx-1])); err != nil {
		a.printf("Horário inválido.\n")
		a.view = ViewHome
		return
	}

	if err := wizard.Proceed(); err != nil {
		a.printf("Selecione data e horário antes de continuar.\n")
		a.view = ViewHome
		return
	}

	a.printf("\nVisita em %s às %s.\n", entry.DisplayDate, wizard.SelectedTime())

	for wizard.State() == book_appointment.StateConfirming {
		name := a.readLine("Seu nome (0 cancela): ")
		if name == "0" {
			a.view = ViewHome
			return
		}
		email := a.readLine("Seu email: ")

		resp, err := wizard.Confirm(ctx, name, email)
		if err != nil {
			a.printBookingError(err)
			if errors.Is(err, book_appointment.ErrSlotNotAvailable) {
				a.view = ViewBooking
				return
			}
			continue
		}

		a.playConfirmationStages()
		a.printf("\n✓ Visita confirmada!\n")
		a.printf("  Protocolo: %s\n", resp.AppointmentID)
		a.printf("  Data: %s às %s\n", resp.DisplayDate, resp.Time)
		a.printf("  Cliente: %s\n", resp.ClientName)
		a.printf("\nO ateliê foi avisado pelo WhatsApp.\n")
	}

	a.readLine("\nPressione Enter para voltar... ")
	a.view = ViewHome
}

func (a *App) printBookingError(err error) {
	switch {
	case errors.Is(err, book_appointment.ErrMissingName):
		a.printf("Informe seu nome para confirmar.\n")
	case errors.Is(err, book_appointment.ErrInvalidEmail):
		a.printf("Email inválido. Verifique e tente novamente.\n")
	case errors.Is(err, book_appointment.ErrSlotNotAvailable):
		a.printf("Este horário acabou de ser reservado. Escolha outro.\n")
	default:
		a.printf("Não foi possível confirmar agora. Tente novamente.\n")
	}
}

// playConfirmationStages выводит косметические этапы подтверждения
func (a *App) playConfirmationStages() {
	stages := []string{
		"Verificando disponibilidade do ateliê...",
		"Reservando seu horário exclusivo...",
		"Confirmando com nosso mestre alfaiate...",
	}
	a.printf("\n")
	for _, stage := range stages {
		a.delay(stageDelay)
		a.printf("  ✓ %s\n", stage)
	}
}
