package app

import (
	"context"
	"errors"
	"strings"

	"github.com/m04kA/FDL-AtelierService/internal/domain"
	availabilitySvc "github.com/m04kA/FDL-AtelierService/internal/service/availability"
	availabilityModels "github.com/m04kA/FDL-AtelierService/internal/service/availability/models"
	ordersSvc "github.com/m04kA/FDL-AtelierService/internal/service/orders"
	ordersModels "github.com/m04kA/FDL-AtelierService/internal/service/orders/models"
)

// viewLogin имитация входа администратора: проверяется только email
// ателье, без пароля и внешнего провайдера.
func (a *App) viewLogin() {
	a.printf("\n── Área Administrativa ─────────────────\n")
	email := a.readLine("Email administrativo (0 cancela): ")
	if email == "0" || email == "" {
		a.view = ViewHome
		return
	}
	if !strings.EqualFold(email, a.cfg.Atelier.AdminEmail) {
		a.printf("Acesso restrito à equipe do ateliê.\n")
		a.view = ViewHome
		return
	}
	a.role = RoleAdmin
	a.log.Info("app: admin session started")
	a.view = ViewAdmin
}

// viewAdmin консоль администратора: заказы, записи, агенда и метрики
func (a *App) viewAdmin(ctx context.Context) {
	a.printf("\n── Painel do Ateliê ────────────────────\n")
	a.printf("  1. Pedidos\n")
	a.printf("  2. Agendamentos\n")
	a.printf("  3. Agenda de horários\n")
	a.printf("  4. Métricas\n")
	a.printf("  0. Encerrar sessão\n")

	switch a.readLine("Escolha uma opção: ") {
	case "1":
		a.adminOrders(ctx)
	case "2":
		a.adminAppointments(ctx)
	case "3":
		a.adminAvailability(ctx)
	case "4":
		a.adminMetrics()
	case "0":
		a.role = RoleClient
		a.log.Info("app: admin session ended")
		a.view = ViewHome
	default:
		a.printf("Opção inválida.\n")
	}
}

// adminOrders таблица заказов со сменой статуса
func (a *App) adminOrders(ctx context.Context) {
	list := a.orders.List(ctx)
	if len(list.Orders) == 0 {
		a.printf("\nNenhum pedido registrado.\n")
		return
	}

	a.printf("\n%-16s %-22s %-20s %s\n", "CÓDIGO", "CLIENTE", "SITUAÇÃO", "INÍCIO")
	for _, order := range list.Orders {
		a.printf("%-16s %-22s %-20s %s\n", order.ID, order.ClientName, order.StatusDisplay, order.Date)
	}

	code := a.readLine("\nCódigo do pedido para atualizar (Enter volta): ")
	if code == "" {
		return
	}

	a.printf("Etapas de produção:\n")
	for i, stage := range domain.ProductionStages {
		a.printf("  %d. %s\n", i+1, stage.DisplayName())
	}
	idx, ok := a.readIndex("Nova etapa (0 cancela): ", len(domain.ProductionStages))
	if !ok {
		return
	}

	err := a.orders.UpdateStatus(ctx, &ordersModels.UpdateStatusRequest{
		OrderID: code,
		Status:  string(domain.ProductionStages[idx-1]),
	})
	switch {
	case err == nil:
		a.printf("✓ Pedido %s atualizado.\n", code)
	case errors.Is(err, ordersSvc.ErrOrderNotFound):
		a.printf("Pedido não encontrado.\n")
	default:
		a.printf("Não foi possível atualizar o pedido.\n")
	}
}

// adminAppointments таблица записей, только чтение
func (a *App) adminAppointments(ctx context.Context) {
	list := a.appointments.List(ctx)
	if len(list.Appointments) == 0 {
		a.printf("\nNenhum agendamento registrado.\n")
		return
	}

	a.printf("\n%-12s %-22s %-12s %-7s %s\n", "PROTOCOLO", "CLIENTE", "DATA", "HORA", "STATUS")
	for _, appt := range list.Appointments {
		a.printf("%-12s %-22s %-12s %-7s %s\n",
			appt.ID, appt.ClientName, appt.DisplayDate, appt.Time, appt.Status)
	}
}

// adminAvailability редактор агенды приема
func (a *App) adminAvailability(ctx context.Context) {
	catalog := a.availability.ListAll(ctx)
	if len(catalog.Entries) == 0 {
		a.printf("\nAgenda vazia.\n")
	} else {
		a.printf("\nAgenda atual:\n")
		for _, entry := range catalog.Entries {
			a.printf("  %s: %s\n", entry.DisplayDate, strings.Join(entry.Times, ", "))
		}
	}

	a.printf("\n  1. Publicar horário\n")
	a.printf("  2. Remover horário\n")
	a.printf("  3. Remover data inteira\n")
	a.printf("  0. Voltar\n")

	switch a.readLine("Escolha uma opção: ") {
	case "1":
		date := a.readLine("Data (AAAA-MM-DD): ")
		t := a.readLine("Horário (HH:MM): ")
		err := a.availability.AddSlot(ctx, &availabilityModels.AddSlotRequest{Date: date, Time: t})
		if err != nil {
			a.printf("Data ou horário inválido.\n")
			return
		}
		a.printf("✓ Horário publicado.\n")
	case "2":
		date := a.readLine("Data (AAAA-MM-DD): ")
		t := a.readLine("Horário (HH:MM): ")
		err := a.availability.RemoveTime(ctx, &availabilityModels.RemoveTimeRequest{Date: date, Time: t})
		if err != nil {
			a.printf("Data ou horário inválido.\n")
			return
		}
		a.printf("✓ Horário removido.\n")
	case "3":
		date := a.readLine("Data (AAAA-MM-DD): ")
		err := a.availability.RemoveDate(ctx, date)
		switch {
		case err == nil:
			a.printf("✓ Data removida da agenda.\n")
		case errors.Is(err, availabilitySvc.ErrDateNotFound):
			a.printf("Data não está na agenda.\n")
		default:
			a.printf("Data inválida.\n")
		}
	}
}

// adminMetrics снимок счетчиков сервиса
func (a *App) adminMetrics() {
	lines, err := a.recorder.Snapshot()
	if err != nil {
		a.printf("\nNão foi possível coletar as métricas.\n")
		return
	}
	if len(lines) == 0 {
		a.printf("\nColeta de métricas desativada.\n")
		return
	}
	a.printf("\n── Métricas ────────────────────────────\n")
	for _, line := range lines {
		a.printf("  %s\n", line)
	}
}
