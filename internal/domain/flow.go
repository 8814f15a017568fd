package domain

import "errors"

// FlowKind represents one of the wizard flows offered by the service
type FlowKind string

const (
	// FlowFreight основной фрахтовый визард (слоты сгруппированы утро/вечер)
	FlowFreight FlowKind = "freight"

	// FlowFreightIntl параллельный фрахтовый визард (слоты сгруппированы по региону)
	FlowFreightIntl FlowKind = "freight-intl"

	// FlowCarShipping трёхшаговый визард перевозки автомобилей
	FlowCarShipping FlowKind = "car-shipping"
)

// ErrUnknownFlow возвращается при неизвестном типе визарда
var ErrUnknownFlow = errors.New("unknown wizard flow")

// ParseFlowKind валидирует строковое значение типа визарда
func ParseFlowKind(s string) (FlowKind, error) {
	switch FlowKind(s) {
	case FlowFreight, FlowFreightIntl, FlowCarShipping:
		return FlowKind(s), nil
	default:
		return "", ErrUnknownFlow
	}
}

// StepID identifies a single wizard step
type StepID string

const (
	StepService   StepID = "service"   // тип перевозки, вид фрахта, условия сервиса
	StepHandling  StepID = "handling"  // тип обработки груза
	StepPackaging StepID = "packaging" // упаковка
	StepLocations StepID = "locations" // адреса отправления и назначения
	StepCargo     StepID = "cargo"     // контейнер и описание груза
	StepTimeline  StepID = "timeline"  // готовность груза
	StepVehicle   StepID = "vehicle"   // данные автомобиля (car-shipping)
	StepRoute     StepID = "route"     // маршрут и сроки (car-shipping)
	StepBooking   StepID = "booking"   // бронирование консультации
)

// freightSteps порядок шагов обоих фрахтовых визардов
var freightSteps = []StepID{
	StepService,
	StepHandling,
	StepPackaging,
	StepLocations,
	StepCargo,
	StepTimeline,
	StepBooking,
}

// carSteps порядок шагов визарда перевозки автомобилей
var carSteps = []StepID{
	StepVehicle,
	StepRoute,
	StepBooking,
}

// StepsFor возвращает упорядоченный список шагов для визарда.
// Оба фрахтовых визарда используют одну последовательность шагов,
// различаются только каталогом слотов и текстами.
func StepsFor(kind FlowKind) []StepID {
	switch kind {
	case FlowFreight, FlowFreightIntl:
		return freightSteps
	case FlowCarShipping:
		return carSteps
	default:
		return nil
	}
}
