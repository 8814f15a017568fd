package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownField возвращается при попытке записать неизвестное поле анкеты
	ErrUnknownField = errors.New("unknown answer field")

	// ErrFieldNotInStep возвращается, когда поле не принадлежит указанному шагу.
	// Каждое поле анкеты может изменяться только своим шагом.
	ErrFieldNotInStep = errors.New("field does not belong to this step")

	// ErrInvalidFieldValue возвращается, когда значение поля вне допустимого набора
	ErrInvalidFieldValue = errors.New("invalid field value")
)

// Answers is the per-flow variant of the wizard answer set.
// Each flow carries only the fields that exist in it, so invalid field
// combinations cannot be represented.
type Answers interface {
	Kind() FlowKind

	// SetField записывает значение поля от имени шага step.
	// Возвращает ErrFieldNotInStep, если поле принадлежит другому шагу.
	SetField(step StepID, field, value string) error

	// Fields возвращает снимок всех заполненных полей (для payload и ответа API)
	Fields() map[string]string

	// Clone возвращает независимую копию анкеты
	Clone() Answers
}

// Допустимые значения ветвящих полей. Тексты шагов ветвятся по этим
// значениям, поэтому они валидируются строго; остальные поля свободные.
var (
	ShippingTypes = []string{"international", "domestic"}
	FreightTypes  = []string{"ocean", "air", "land"}
	ServiceTypes  = []string{"door-to-door", "door-to-port", "port-to-port"}
)

func oneOf(value string, allowed []string) bool {
	for _, v := range allowed {
		if v == value {
			return true
		}
	}
	return false
}

// NewAnswers создает пустой вариант анкеты для визарда
func NewAnswers(kind FlowKind) (Answers, error) {
	switch kind {
	case FlowFreight, FlowFreightIntl:
		return &FreightAnswers{flow: kind}, nil
	case FlowCarShipping:
		return &CarAnswers{}, nil
	default:
		return nil, ErrUnknownFlow
	}
}

// FreightAnswers анкета фрахтовых визардов
type FreightAnswers struct {
	flow FlowKind

	ShippingType string // international | domestic
	FreightType  string // ocean | air | land
	ServiceType  string // door-to-door | door-to-port | port-to-port

	HandlingType string
	Packaging    string

	OriginLocation      string
	DestinationLocation string

	ContainerType    string
	CargoDescription string

	Readiness string
}

// Kind возвращает тип визарда
func (a *FreightAnswers) Kind() FlowKind { return a.flow }

// Clone возвращает независимую копию фрахтовой анкеты
func (a *FreightAnswers) Clone() Answers {
	c := *a
	return &c
}

// freightFieldSteps владелец каждого поля фрахтовой анкеты
var freightFieldSteps = map[string]StepID{
	"shippingType":        StepService,
	"freightType":         StepService,
	"serviceType":         StepService,
	"handlingType":        StepHandling,
	"packaging":           StepPackaging,
	"originLocation":      StepLocations,
	"destinationLocation": StepLocations,
	"containerType":       StepCargo,
	"cargoDescription":    StepCargo,
	"readiness":           StepTimeline,
}

// SetField записывает поле фрахтовой анкеты с проверкой владеющего шага
func (a *FreightAnswers) SetField(step StepID, field, value string) error {
	owner, ok := freightFieldSteps[field]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownField, field)
	}
	if owner != step {
		return fmt.Errorf("%w: %q belongs to step %q", ErrFieldNotInStep, field, owner)
	}

	switch field {
	case "shippingType":
		if !oneOf(value, ShippingTypes) {
			return fmt.Errorf("%w: shippingType=%q", ErrInvalidFieldValue, value)
		}
		a.ShippingType = value
	case "freightType":
		if !oneOf(value, FreightTypes) {
			return fmt.Errorf("%w: freightType=%q", ErrInvalidFieldValue, value)
		}
		a.FreightType = value
	case "serviceType":
		if !oneOf(value, ServiceTypes) {
			return fmt.Errorf("%w: serviceType=%q", ErrInvalidFieldValue, value)
		}
		a.ServiceType = value
	case "handlingType":
		a.HandlingType = value
	case "packaging":
		a.Packaging = value
	case "originLocation":
		a.OriginLocation = value
	case "destinationLocation":
		a.DestinationLocation = value
	case "containerType":
		a.ContainerType = value
	case "cargoDescription":
		a.CargoDescription = value
	case "readiness":
		a.Readiness = value
	}
	return nil
}

// Fields возвращает заполненные поля фрахтовой анкеты
func (a *FreightAnswers) Fields() map[string]string {
	fields := map[string]string{}
	put := func(name, value string) {
		if value != "" {
			fields[name] = value
		}
	}
	put("shippingType", a.ShippingType)
	put("freightType", a.FreightType)
	put("serviceType", a.ServiceType)
	put("handlingType", a.HandlingType)
	put("packaging", a.Packaging)
	put("originLocation", a.OriginLocation)
	put("destinationLocation", a.DestinationLocation)
	put("containerType", a.ContainerType)
	put("cargoDescription", a.CargoDescription)
	put("readiness", a.Readiness)
	return fields
}

// CarAnswers анкета визарда перевозки автомобилей
type CarAnswers struct {
	VehicleMake      string
	VehicleModel     string
	VehicleYear      string
	VehicleCondition string // running | non-running

	PickupLocation   string
	DeliveryLocation string
	Readiness        string
}

// Kind возвращает тип визарда
func (a *CarAnswers) Kind() FlowKind { return FlowCarShipping }

// Clone возвращает независимую копию анкеты car-shipping
func (a *CarAnswers) Clone() Answers {
	c := *a
	return &c
}

// carFieldSteps владелец каждого поля анкеты car-shipping
var carFieldSteps = map[string]StepID{
	"vehicleMake":      StepVehicle,
	"vehicleModel":     StepVehicle,
	"vehicleYear":      StepVehicle,
	"vehicleCondition": StepVehicle,
	"pickupLocation":   StepRoute,
	"deliveryLocation": StepRoute,
	"readiness":        StepRoute,
}

// SetField записывает поле анкеты car-shipping с проверкой владеющего шага
func (a *CarAnswers) SetField(step StepID, field, value string) error {
	owner, ok := carFieldSteps[field]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownField, field)
	}
	if owner != step {
		return fmt.Errorf("%w: %q belongs to step %q", ErrFieldNotInStep, field, owner)
	}

	switch field {
	case "vehicleMake":
		a.VehicleMake = value
	case "vehicleModel":
		a.VehicleModel = value
	case "vehicleYear":
		a.VehicleYear = value
	case "vehicleCondition":
		a.VehicleCondition = value
	case "pickupLocation":
		a.PickupLocation = value
	case "deliveryLocation":
		a.DeliveryLocation = value
	case "readiness":
		a.Readiness = value
	}
	return nil
}

// Fields возвращает заполненные поля анкеты car-shipping
func (a *CarAnswers) Fields() map[string]string {
	fields := map[string]string{}
	put := func(name, value string) {
		if value != "" {
			fields[name] = value
		}
	}
	put("vehicleMake", a.VehicleMake)
	put("vehicleModel", a.VehicleModel)
	put("vehicleYear", a.VehicleYear)
	put("vehicleCondition", a.VehicleCondition)
	put("pickupLocation", a.PickupLocation)
	put("deliveryLocation", a.DeliveryLocation)
	put("readiness", a.Readiness)
	return fields
}
