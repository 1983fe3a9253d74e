package result_file_repo

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"roulette_sim/internal/converter"
	"roulette_sim/internal/model"
	"roulette_sim/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/multierr"
)

type repo struct {
	w      *bufio.Writer
	closer io.Closer
}

// NewResultRepository Плоский текстовый файл, по строке на испытание, без заголовка.
// Существующий файл дописывается.
func NewResultRepository(path string) (repository.ResultRepository, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open output file: %w", err)
	}
	return NewWriterRepository(f), nil
}

// NewWriterRepository Запись в произвольный writer, закрывается вместе с репозиторием если это io.Closer
func NewWriterRepository(w io.Writer) repository.ResultRepository {
	r := &repo{w: bufio.NewWriter(w)}
	if c, ok := w.(io.Closer); ok {
		r.closer = c
	}
	return r
}

// В файле нет ничего, кроме строк результатов
func (r *repo) StartRun(context.Context, uuid.UUID, model.Strategy) error {
	return nil
}

// SaveResults - дописывает пачку и сбрасывает буфер, чтобы уже записанное оставалось валидным
func (r *repo) SaveResults(_ context.Context, _ uuid.UUID, results []model.TrialResult) error {
	for _, res := range results {
		if _, err := r.w.WriteString(converter.ToRecord(res) + "\n"); err != nil {
			return fmt.Errorf("write result: %w", err)
		}
	}
	if err := r.w.Flush(); err != nil {
		return fmt.Errorf("flush results: %w", err)
	}
	return nil
}

func (r *repo) FinishRun(context.Context, model.Summary) error {
	return nil
}

func (r *repo) Close() error {
	err := r.w.Flush()
	if r.closer != nil {
		err = multierr.Append(err, r.closer.Close())
	}
	return err
}
