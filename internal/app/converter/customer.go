package converter

import (
	"fmt"
	"time"

	"github.com/kisaanstar/console/internal/app/entity"
	"github.com/kisaanstar/console/internal/app/model"
)

func ConvertCustomerResponseToCustomer(response model.CustomerResponse) entity.Customer {
	return entity.Customer{
		ID:                entity.CustomerID(response.ID),
		Name:              response.Name,
		MobileNumber:      response.MobileNumber,
		AlternativeNumber: response.AlternativeNumber,
		Village:           response.Village,
		Taluka:            response.Taluka,
		District:          response.District,
		State:             response.State,
		Pincode:           response.Pincode,
		NearbyLocation:    response.NearbyLocation,
		PostOffice:        response.PostOffice,
	}
}

func ConvertCustomerToUpdateRequest(customer entity.Customer) model.UpdateCustomerRequest {
	return model.UpdateCustomerRequest{
		Name:              customer.Name,
		AlternativeNumber: customer.AlternativeNumber,
		Village:           customer.Village,
		Taluka:            customer.Taluka,
		District:          customer.District,
		State:             customer.State,
		Pincode:           customer.Pincode,
		NearbyLocation:    customer.NearbyLocation,
		PostOffice:        customer.PostOffice,
	}
}

func ConvertRemarksResponseToRemarks(response model.RemarksResponse) (entity.Remarks, error) {
	remarks := make(entity.Remarks, 0, len(response))

	for _, remarkResponse := range response {
		remark, err := ConvertRemarkResponseToRemark(remarkResponse)
		if err != nil {
			return nil, err
		}
		remarks = append(remarks, remark)
	}

	return remarks, nil
}

func ConvertRemarkResponseToRemark(response model.RemarkResponse) (entity.Remark, error) {
	createdAt, err := time.Parse(time.RFC3339, response.CreatedAt)
	if err != nil {
		return entity.Remark{}, fmt.Errorf("error while parsing remark creation time: %w", err)
	}

	return entity.Remark{
		AdvisorID: entity.AdvisorID(response.AdvisoryID),
		Text:      response.Remark,
		CreatedAt: createdAt,
	}, nil
}
