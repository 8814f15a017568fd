package domain

import "github.com/shamal-freight/SFB-LeadService/pkg/types"

// SlotGroup группа, в которой слот отображается посетителю
type SlotGroup string

const (
	GroupMorning   SlotGroup = "morning"
	GroupEvening   SlotGroup = "evening"
	GroupGCCEurope SlotGroup = "gcc-europe"
	GroupUSACanada SlotGroup = "usa-canada"
)

// CatalogGrouping стратегия группировки каталога слотов
type CatalogGrouping string

const (
	// GroupByDaypart слоты делятся на утро/вечер по местному часу посетителя
	GroupByDaypart CatalogGrouping = "daypart"

	// GroupByRegion слоты закреплены за регионом прямо в каталоге
	GroupByRegion CatalogGrouping = "region"
)

// CatalogEntry запись фиксированного каталога слотов.
// Region заполнен только для каталогов с группировкой по региону.
type CatalogEntry struct {
	Label  types.TimeLabel
	Region SlotGroup
}

// SlotCatalog фиксированный каталог предлагаемых времён консультации для визарда
type SlotCatalog struct {
	Grouping CatalogGrouping
	Entries  []CatalogEntry
}

// Contains возвращает true, если метка присутствует в каталоге
func (c SlotCatalog) Contains(label types.TimeLabel) bool {
	for _, e := range c.Entries {
		if e.Label == label {
			return true
		}
	}
	return false
}

func mustLabel(s string) types.TimeLabel {
	l, err := types.ParseTimeLabel(s)
	if err != nil {
		panic(err)
	}
	return l
}

// daypartCatalog каталог основного фрахтового визарда и визарда car-shipping
var daypartCatalog = SlotCatalog{
	Grouping: GroupByDaypart,
	Entries: []CatalogEntry{
		{Label: mustLabel("10:30 AM")},
		{Label: mustLabel("11:30 AM")},
		{Label: mustLabel("12:30 PM")},
		{Label: mustLabel("5:00 PM")},
		{Label: mustLabel("6:00 PM")},
		{Label: mustLabel("7:00 PM")},
	},
}

// regionCatalog каталог визарда freight-intl: первая группа обслуживает
// GCC/Европу, вторая — США/Канаду. Порядок записей определяет порядок вывода.
var regionCatalog = SlotCatalog{
	Grouping: GroupByRegion,
	Entries: []CatalogEntry{
		{Label: mustLabel("10:00 AM"), Region: GroupGCCEurope},
		{Label: mustLabel("11:00 AM"), Region: GroupGCCEurope},
		{Label: mustLabel("12:00 PM"), Region: GroupGCCEurope},
		{Label: mustLabel("5:00 PM"), Region: GroupUSACanada},
		{Label: mustLabel("6:00 PM"), Region: GroupUSACanada},
		{Label: mustLabel("7:00 PM"), Region: GroupUSACanada},
		{Label: mustLabel("8:00 PM"), Region: GroupUSACanada},
	},
}

// CatalogFor возвращает каталог слотов визарда.
// Каталоги двух фрахтовых визардов намеренно не унифицированы: это два
// независимых набора времён, принадлежащих двум параллельным продуктам.
func CatalogFor(kind FlowKind) (SlotCatalog, error) {
	switch kind {
	case FlowFreight, FlowCarShipping:
		return daypartCatalog, nil
	case FlowFreightIntl:
		return regionCatalog, nil
	default:
		return SlotCatalog{}, ErrUnknownFlow
	}
}

// TimeSlot слот, вычисленный для конкретной даты и зоны посетителя.
// Слоты не хранятся: пересчитываются из каталога и актуального booked-set.
type TimeSlot struct {
	BrokerTime types.TimeLabel // время брокера из каталога
	LocalTime  types.TimeLabel // то же время в зоне посетителя
	Available  bool
	Group      SlotGroup
}

// BookedSlot запись о занятом слоте, полученная от scheduling backend
type BookedSlot struct {
	SelectedTime string // метка времени брокера, например "7:00 PM"
	UserName     string
}
