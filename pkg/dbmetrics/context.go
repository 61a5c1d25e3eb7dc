package dbmetrics

import "context"

// executorKey ключ контекста для передачи активной транзакции в репозитории
type executorKey struct{}

// WithExecutor кладёт исполнителя (обычно транзакцию) в контекст.
// Репозитории достают его через GetExecutor и выполняют запросы в рамках транзакции.
func WithExecutor(ctx context.Context, executor DBExecutor) context.Context {
	return context.WithValue(ctx, executorKey{}, executor)
}

// GetExecutor возвращает исполнителя из контекста, либо fallback, если транзакции нет.
func GetExecutor(ctx context.Context, fallback DBExecutor) DBExecutor {
	if executor, ok := ctx.Value(executorKey{}).(DBExecutor); ok {
		return executor
	}
	return fallback
}
