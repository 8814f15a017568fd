package wizard

import (
	"github.com/shamal-freight/SFB-LeadService/internal/domain"
)

// StepCopy заголовок и описание текущего шага для отрисовки
type StepCopy struct {
	Step        domain.StepID
	Title       string
	Description string
}

// CopyFor подбирает тексты текущего шага. Тексты ветвятся по ранее данным
// ответам (shippingType / freightType / serviceType) — выбор текста чистая
// функция от сессии, без состояния.
func CopyFor(session *domain.WizardSession) StepCopy {
	step := session.CurrentStep()

	switch answers := session.Answers.(type) {
	case *domain.FreightAnswers:
		return freightCopy(step, answers)
	case *domain.CarAnswers:
		return carCopy(step)
	default:
		return StepCopy{Step: step}
	}
}

func freightCopy(step domain.StepID, a *domain.FreightAnswers) StepCopy {
	c := StepCopy{Step: step}

	switch step {
	case domain.StepService:
		c.Title = "Tell us about your shipment"
		c.Description = "Choose the shipping type, freight mode and service terms that fit your cargo."

	case domain.StepHandling:
		switch a.FreightType {
		case "ocean":
			c.Title = "How should we handle your ocean cargo?"
			c.Description = "Select the handling requirements for loading and discharge at the ports."
		case "air":
			c.Title = "How should we handle your air cargo?"
			c.Description = "Air freight has strict handling and screening requirements — tell us what applies."
		case "land":
			c.Title = "How should we handle your cargo in transit?"
			c.Description = "Select the handling requirements for pickup, transfer and delivery by road."
		default:
			c.Title = "How should we handle your cargo?"
			c.Description = "Select the handling requirements that apply to your shipment."
		}

	case domain.StepPackaging:
		if a.FreightType == "air" {
			c.Title = "How is your cargo packaged?"
			c.Description = "Airlines require secured, weighable packaging. Choose what matches your cargo."
		} else {
			c.Title = "How is your cargo packaged?"
			c.Description = "Palletized, crated or loose — packaging affects rates and transit handling."
		}

	case domain.StepLocations:
		if a.ShippingType == "domestic" {
			c.Title = "Where is your cargo moving?"
			c.Description = "Enter the pickup and delivery addresses inside the Kingdom."
		} else {
			c.Title = "Where is your cargo moving?"
			c.Description = "Enter the origin and destination. We handle customs clearance on international routes."
		}

	case domain.StepCargo:
		switch a.FreightType {
		case "ocean":
			c.Title = "Container and cargo details"
			c.Description = "Pick a container type and describe the cargo so we can quote accurately."
		case "air":
			c.Title = "Cargo details"
			c.Description = "Describe the cargo, its dimensions and weight class."
		default:
			c.Title = "Cargo details"
			c.Description = "Describe the cargo and the equipment it needs."
		}

	case domain.StepTimeline:
		c.Title = "When will your cargo be ready?"
		c.Description = "A readiness window helps us line up carriers and rates in advance."

	case domain.StepBooking:
		switch a.ServiceType {
		case "door-to-door":
			c.Title = "Book your door-to-door consultation"
			c.Description = "Pick a time to walk through the full route with a freight specialist."
		case "port-to-port":
			c.Title = "Book your port-to-port consultation"
			c.Description = "Pick a time to review port schedules and rates with a freight specialist."
		default:
			c.Title = "Book your consultation"
			c.Description = "Pick a date and time that works for you — times are shown in your local timezone."
		}
	}

	return c
}

func carCopy(step domain.StepID) StepCopy {
	c := StepCopy{Step: step}

	switch step {
	case domain.StepVehicle:
		c.Title = "Tell us about your vehicle"
		c.Description = "Make, model, year and whether the vehicle is running."
	case domain.StepRoute:
		c.Title = "Where is your vehicle going?"
		c.Description = "Pickup and delivery locations, and when the vehicle will be ready."
	case domain.StepBooking:
		c.Title = "Book your consultation"
		c.Description = "Pick a date and time that works for you — times are shown in your local timezone."
	}

	return c
}
