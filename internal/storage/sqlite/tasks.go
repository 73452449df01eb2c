package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/julianstephens/pomoplan/internal/models"
	"github.com/julianstephens/pomoplan/internal/storage"
)

const taskColumns = `id, name, estimated_hours, urgency, deadline_day, deleted_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTask(row rowScanner) (models.Task, error) {
	var t models.Task
	var deadline sql.NullInt64
	var deletedAt sql.NullString

	if err := row.Scan(&t.ID, &t.Name, &t.EstimatedHours, &t.Urgency, &deadline, &deletedAt); err != nil {
		return models.Task{}, err
	}
	if deadline.Valid {
		day := int(deadline.Int64)
		t.DeadlineDayIndex = &day
	}
	if deletedAt.Valid {
		t.DeletedAt = &deletedAt.String
	}
	return t, nil
}

func deadlineValue(t models.Task) sql.NullInt64 {
	if t.DeadlineDayIndex == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*t.DeadlineDayIndex), Valid: true}
}

func (s *Store) AddTask(task models.Task) error {
	_, err := s.db.Exec(`
		INSERT INTO tasks (id, name, estimated_hours, urgency, deadline_day, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		task.ID, task.Name, task.EstimatedHours, task.Urgency, deadlineValue(task),
		time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("failed to add task %s: %w", task.ID, err)
	}
	return nil
}

func (s *Store) GetTask(id string) (models.Task, error) {
	row := s.db.QueryRow(`SELECT `+taskColumns+` FROM tasks WHERE id = ? AND deleted_at IS NULL`, id)

	t, err := scanTask(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Task{}, fmt.Errorf("task %s: %w", id, storage.ErrNotFound)
		}
		return models.Task{}, err
	}
	return t, nil
}

func (s *Store) GetAllTasks() ([]models.Task, error) {
	rows, err := s.db.Query(`SELECT ` + taskColumns + ` FROM tasks WHERE deleted_at IS NULL ORDER BY created_at, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tasks []models.Task
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

func (s *Store) UpdateTask(task models.Task) error {
	res, err := s.db.Exec(`
		UPDATE tasks SET name = ?, estimated_hours = ?, urgency = ?, deadline_day = ?
		WHERE id = ? AND deleted_at IS NULL`,
		task.Name, task.EstimatedHours, task.Urgency, deadlineValue(task), task.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update task %s: %w", task.ID, err)
	}
	return requireAffected(res, "task", task.ID)
}

func (s *Store) DeleteTask(id string) error {
	// Soft delete: set deleted_at timestamp instead of removing the record
	var deletedAt sql.NullString
	err := s.db.QueryRow("SELECT deleted_at FROM tasks WHERE id = ?", id).Scan(&deletedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("task %s: %w", id, storage.ErrNotFound)
		}
		return fmt.Errorf("failed to check task existence: %w", err)
	}

	if deletedAt.Valid {
		return fmt.Errorf("task with id %s is already deleted", id)
	}

	now := time.Now().UTC().Format(time.RFC3339)
	_, err = s.db.Exec("UPDATE tasks SET deleted_at = ? WHERE id = ?", now, id)
	return err
}

func (s *Store) RestoreTask(id string) error {
	var deletedAt sql.NullString
	err := s.db.QueryRow("SELECT deleted_at FROM tasks WHERE id = ?", id).Scan(&deletedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("task %s: %w", id, storage.ErrNotFound)
		}
		return fmt.Errorf("failed to check task existence: %w", err)
	}

	if !deletedAt.Valid {
		return fmt.Errorf("cannot restore a task that is not deleted: %s", id)
	}

	_, err = s.db.Exec("UPDATE tasks SET deleted_at = NULL WHERE id = ?", id)
	return err
}

func requireAffected(res sql.Result, kind, id string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("%s %s: %w", kind, id, storage.ErrNotFound)
	}
	return nil
}
