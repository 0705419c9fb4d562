package converter

import (
	"github.com/kisaanstar/console/internal/app/entity"
	"github.com/kisaanstar/console/internal/app/model"
)

func ConvertAdvisorRefToAdvisor(ref model.AdvisorRef) entity.Advisor {
	return entity.Advisor{
		ID:   entity.AdvisorID(ref.ID),
		Name: ref.Name,
	}
}

func ConvertAdvisorsResponseToAdvisors(response model.AdvisorsResponse) entity.Advisors {
	advisors := make(entity.Advisors, 0, len(response))

	for _, advisorResponse := range response {
		advisors = append(advisors, ConvertAdvisorResponseToAdvisor(advisorResponse))
	}

	return advisors
}

func ConvertAdvisorResponseToAdvisor(response model.AdvisorResponse) entity.Advisor {
	return entity.Advisor{
		ID:           entity.AdvisorID(response.ID),
		Name:         response.Name,
		Email:        response.Email,
		LoginEnabled: response.LoginEnabled,
	}
}
