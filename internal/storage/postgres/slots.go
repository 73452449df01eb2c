package postgres

import (
	"fmt"

	"github.com/julianstephens/pomoplan/internal/models"
)

func (s *Store) AddUnavailableSlot(slot models.UnavailableSlot) error {
	if !slot.Valid() {
		return fmt.Errorf("invalid unavailable slot: day %d, %d-%d", slot.DayOfWeek, slot.StartMinutes, slot.EndMinutes)
	}
	if slot.Type == "" {
		slot.Type = models.SlotTypeUnavailable
	}

	_, err := s.db.Exec(`
		INSERT INTO unavailable_slots (id, day_of_week, start_minutes, end_minutes, slot_type)
		VALUES ($1, $2, $3, $4, $5)`,
		slot.ID, slot.DayOfWeek, slot.StartMinutes, slot.EndMinutes, string(slot.Type),
	)
	if err != nil {
		return fmt.Errorf("failed to add unavailable slot: %w", err)
	}
	return nil
}

func (s *Store) GetUnavailableSlots() ([]models.UnavailableSlot, error) {
	rows, err := s.db.Query(`
		SELECT id, day_of_week, start_minutes, end_minutes, slot_type
		FROM unavailable_slots
		ORDER BY day_of_week, start_minutes`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var slots []models.UnavailableSlot
	for rows.Next() {
		var slot models.UnavailableSlot
		var slotType string
		if err := rows.Scan(&slot.ID, &slot.DayOfWeek, &slot.StartMinutes, &slot.EndMinutes, &slotType); err != nil {
			return nil, err
		}
		slot.Type = models.SlotType(slotType)
		slots = append(slots, slot)
	}
	return slots, rows.Err()
}

func (s *Store) DeleteUnavailableSlot(id string) error {
	res, err := s.db.Exec("DELETE FROM unavailable_slots WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to delete unavailable slot: %w", err)
	}
	return requireAffected(res, "unavailable slot", id)
}
