package app

import (
	"context"
	"errors"
	"strings"

	"github.com/m04kA/FDL-AtelierService/internal/domain"
	ordersSvc "github.com/m04kA/FDL-AtelierService/internal/service/orders"
	"github.com/m04kA/FDL-AtelierService/internal/usecase/submit_measurements"
)

// viewCollection выводит витрину коллекции ателье
func (a *App) viewCollection() {
	a.printf("\n── Coleção ─────────────────────────────\n")
	for _, item := range domain.CollectionItems {
		a.printf("\n  %s · %s\n", item.Name, item.Category)
		a.printf("  R$ %.2f\n", item.Price)
		a.printf("  %s\n", item.Description)
	}
	a.readLine("\nPressione Enter para voltar... ")
	a.view = ViewHome
}

// viewMeasurements форма снятия мерок с оформлением заказа.
// Контактные поля необязательны: пустые значения заменяются
// плейсхолдерами ателье.
func (a *App) viewMeasurements(ctx context.Context) {
	a.printf("\n── Medidas e Pedido ────────────────────\n")
	a.printf("Deixe em branco os campos que preferir não informar.\n\n")

	name := a.readLine("Nome: ")
	email := a.readLine("Email: ")
	clothingType := a.readLine("Tipo de peça (ex: Terno Completo): ")

	data := domain.MeasurementData{
		ClothingType: clothingType,
		Neck:         a.readOptionalFloat("Pescoço (cm): "),
		Chest:        a.readOptionalFloat("Peito (cm): "),
		Waist:        a.readOptionalFloat("Cintura (cm): "),
		Hips:         a.readOptionalFloat("Quadril (cm): "),
		SleeveLength: a.readOptionalFloat("Comprimento da manga (cm): "),
		Shoulders:    a.readOptionalFloat("Ombros (cm): "),
		Height:       a.readOptionalFloat("Altura (cm): "),
		Weight:       a.readOptionalFloat("Peso (kg): "),
	}

	resp, err := a.intake.Execute(ctx, &submit_measurements.Request{
		ClientName:   name,
		ClientEmail:  email,
		Measurements: data,
	})
	if err != nil {
		if errors.Is(err, submit_measurements.ErrInvalidMeasurement) {
			a.printf("\nAlguma medida está fora do intervalo aceito. Revise os valores.\n")
		} else {
			a.printf("\nNão foi possível registrar o pedido. Tente novamente.\n")
		}
		a.view = ViewHome
		return
	}

	a.printf("\n✓ Pedido %s registrado para %s.\n", resp.OrderID, resp.ClientName)
	a.printf("\nAnálise do ateliê:\n  %s\n", resp.Analysis)
	a.printf("\nGuarde o código %s para acompanhar a produção.\n", resp.OrderID)
	a.readLine("\nPressione Enter para voltar... ")
	a.view = ViewHome
}

// viewConcierge консьерж стилистических recomendações
func (a *App) viewConcierge(ctx context.Context) {
	a.printf("\n── Concierge de Estilo ─────────────────\n")

	occasion := a.readLine("Ocasião (ex: casamento na praia): ")
	preference := a.readLine("Preferência de estilo (ex: clássico, moderno): ")

	data := domain.MeasurementData{
		Height: a.readOptionalFloat("Altura (cm, opcional): "),
		Weight: a.readOptionalFloat("Peso (kg, opcional): "),
	}

	a.printf("\nConsultando nosso mestre de estilo...\n")
	advice := a.advisor.GetStylingAdvice(ctx, data, occasion, preference)
	a.printf("\n%s\n", advice)
	a.readLine("\nPressione Enter para voltar... ")
	a.view = ViewHome
}

// viewStatus рассказчик прогресса заказа по коду
func (a *App) viewStatus(ctx context.Context) {
	a.printf("\n── Acompanhar Pedido ───────────────────\n")

	code := a.readLine("Código do pedido (ex: FDL-A2B3-2026): ")
	if code == "" {
		a.printf("Informe o código do pedido para consultar.\n")
		a.view = ViewHome
		return
	}

	order, err := a.orders.Track(ctx, code)
	if err != nil {
		if errors.Is(err, ordersSvc.ErrOrderNotFound) {
			a.printf("\nPedido não encontrado. Verifique o código e tente novamente.\n")
		} else {
			a.printf("\nNão foi possível consultar o pedido agora.\n")
		}
		a.view = ViewHome
		return
	}

	a.printf("\nPedido %s · %s\n", order.ID, order.ClientName)
	a.printf("Peça: %s\n", order.ClothingType)
	a.printf("Iniciado em %s\n", order.Date)
	a.printf("Situação: %s\n\n", order.StatusDisplay)
	a.printProgress(order.ProgressIndex, order.ProgressTotal)

	a.readLine("\nPressione Enter para voltar... ")
	a.view = ViewHome
}

// printProgress рисует шкалу этапов производства
func (a *App) printProgress(index, total int) {
	for i, stage := range domain.ProgressSteps {
		marker := "○"
		if i <= index {
			marker = "●"
		}
		a.printf("  %s %s\n", marker, stage.DisplayName())
	}
	done := index + 1
	if done > total {
		done = total
	}
	a.printf("\n  [%s%s] %d/%d etapas\n",
		strings.Repeat("█", done),
		strings.Repeat("░", total-done),
		done, total)
}
