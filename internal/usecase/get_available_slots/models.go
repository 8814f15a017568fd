package get_available_slots

import (
	"time"

	"github.com/google/uuid"

	"github.com/shamal-freight/SFB-LeadService/internal/domain"
)

// Request модель запроса на получение доступных слотов
type Request struct {
	SessionID uuid.UUID // ID сессии визарда (дата берётся из сессии)
	ViewerTZ  string    // IANA зона посетителя, пустая строка = UTC
}

// Response модель ответа со сгруппированными слотами
type Response struct {
	Date     time.Time       // дата, на которую вычислены слоты
	Flow     domain.FlowKind // тип визарда (определяет каталог)
	ViewerTZ string          // зона, в которой показаны местные времена
	Groups   []SlotGroup     // группы в порядке отображения
}

// SlotGroup группа слотов для отображения
type SlotGroup struct {
	Group domain.SlotGroup
	Slots []Slot
}

// Slot вычисленный слот
type Slot struct {
	Time      string // метка времени брокера из каталога, например "7:00 PM"
	LocalTime string // та же метка в зоне посетителя
	Available bool
}
