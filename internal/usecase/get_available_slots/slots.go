package get_available_slots

import (
	"sort"
	"time"

	"github.com/shamal-freight/SFB-LeadService/internal/brokertime"
	"github.com/shamal-freight/SFB-LeadService/internal/domain"
	"github.com/shamal-freight/SFB-LeadService/pkg/types"
)

// bookedLabels извлекает занятые метки из ответа backend.
// Метки сравниваются с каталогом строго по строковому равенству; метки,
// которых нет в каталоге, молча игнорируются при вычислении — они не
// ошибка и не блокируют остальные слоты.
func bookedLabels(booked []domain.BookedSlot) []string {
	labels := make([]string, 0, len(booked))
	for _, b := range booked {
		labels = append(labels, b.SelectedTime)
	}
	return labels
}

// computedSlot промежуточное представление слота до группировки
type computedSlot struct {
	broker    types.TimeLabel
	local     types.TimeLabel
	available bool
	group     domain.SlotGroup
}

// buildSlotGroups вычисляет доступность и местное время каждого слота
// каталога и раскладывает слоты по группам отображения
func buildSlotGroups(
	catalog domain.SlotCatalog,
	view *domain.BookedSetView,
	date time.Time,
	viewer *time.Location,
	converter *brokertime.Converter,
) []SlotGroup {
	computed := make([]computedSlot, 0, len(catalog.Entries))
	for _, entry := range catalog.Entries {
		local := converter.ToViewer(entry.Label, date, viewer)

		group := entry.Region
		if catalog.Grouping == domain.GroupByDaypart {
			group = brokertime.Daypart(local)
		}

		computed = append(computed, computedSlot{
			broker:    entry.Label,
			local:     local,
			available: !view.Contains(entry.Label.String()),
			group:     group,
		})
	}

	switch catalog.Grouping {
	case domain.GroupByDaypart:
		return daypartGroups(computed)
	default:
		return regionGroups(catalog, computed)
	}
}

// daypartGroups делит слоты на утро/вечер по МЕСТНОМУ часу посетителя и
// сортирует каждую группу по возрастанию местного времени.
// Сравнение идёт по времени суток без учёта даты: слот, ушедший при
// конвертации за полночь, сортируется по своему местному значению и может
// встать не по порядку — поведение сохранено осознанно.
func daypartGroups(computed []computedSlot) []SlotGroup {
	var morning, evening []computedSlot
	for _, s := range computed {
		if s.group == domain.GroupMorning {
			morning = append(morning, s)
		} else {
			evening = append(evening, s)
		}
	}

	byLocal := func(slots []computedSlot) {
		sort.Slice(slots, func(i, j int) bool {
			return slots[i].local.IsBefore(slots[j].local)
		})
	}
	byLocal(morning)
	byLocal(evening)

	groups := make([]SlotGroup, 0, 2)
	if len(morning) > 0 {
		groups = append(groups, SlotGroup{Group: domain.GroupMorning, Slots: toSlots(morning)})
	}
	if len(evening) > 0 {
		groups = append(groups, SlotGroup{Group: domain.GroupEvening, Slots: toSlots(evening)})
	}
	return groups
}

// regionGroups раскладывает слоты по регионам, объявленным в каталоге.
// Дополнительной сортировки нет: порядок задаёт сам каталог.
func regionGroups(catalog domain.SlotCatalog, computed []computedSlot) []SlotGroup {
	var order []domain.SlotGroup
	byGroup := map[domain.SlotGroup][]computedSlot{}

	for _, s := range computed {
		if _, ok := byGroup[s.group]; !ok {
			order = append(order, s.group)
		}
		byGroup[s.group] = append(byGroup[s.group], s)
	}

	groups := make([]SlotGroup, 0, len(order))
	for _, g := range order {
		groups = append(groups, SlotGroup{Group: g, Slots: toSlots(byGroup[g])})
	}
	return groups
}

func toSlots(computed []computedSlot) []Slot {
	slots := make([]Slot, len(computed))
	for i, s := range computed {
		slots[i] = Slot{
			Time:      s.broker.String(),
			LocalTime: s.local.String(),
			Available: s.available,
		}
	}
	return slots
}
