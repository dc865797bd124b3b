package memtx

import (
	"context"
	"sync"
)

// TransactionManager сериализует мутации in-memory хранилищ.
// Заменяет транзакции БД: пока выполняется fn, ни одна другая
// сериализуемая секция не может начаться. Это критическая секция,
// которая делает связку "снять слот + записать бронь" атомарной
// даже при нескольких горутинах-писателях.
type TransactionManager struct {
	mu sync.Mutex
}

// NewTransactionManager создает новый менеджер.
func NewTransactionManager() *TransactionManager {
	return &TransactionManager{}
}

// Do выполняет fn под общей блокировкой.
func (m *TransactionManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.DoSerializable(ctx, fn)
}

// DoSerializable выполняет fn как единственного писателя.
func (m *TransactionManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return fn(ctx)
}

// DoReadOnly выполняет fn под той же блокировкой.
// Для in-memory хранилищ согласованное чтение требует тех же гарантий.
func (m *TransactionManager) DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.DoSerializable(ctx, fn)
}
