// Package customer implements the advisory customer flows: lookup by mobile
// number, first-time registration, address updates and remarks.
package customer

import (
	"context"
	"errors"
	"sort"
	"strings"

	"github.com/kisaanstar/console/internal/app/client"
	"github.com/kisaanstar/console/internal/app/entity"
	"github.com/kisaanstar/console/internal/app/usecase/validator"
	"go.uber.org/zap"
)

var (
	ErrMobileNumberInvalid = errors.New("mobile number must be a 10-digit numeric value")
	ErrNameRequired        = errors.New("customer name is required")
	ErrRemarkEmpty         = errors.New("remark text is required")
)

// Directory is the slice of the remote API the customer flows depend on.
type Directory interface {
	SearchCustomer(ctx context.Context, mobileNumber string) (entity.Customer, error)
	AddCustomer(ctx context.Context, mobileNumber, name string) (entity.Customer, error)
	UpdateCustomer(ctx context.Context, mobileNumber string, customer entity.Customer) error
	Remarks(ctx context.Context, customerID entity.CustomerID) (entity.Remarks, error)
	AddRemark(ctx context.Context, customerID entity.CustomerID, advisorID entity.AdvisorID, text string) (entity.Remark, error)
}

type Service struct {
	directory Directory
}

func NewService(directory Directory) *Service {
	return &Service{directory: directory}
}

// Lookup searches a customer by mobile number. A missing customer is not an
// error: found reports whether the record exists so the caller can open the
// registration form instead.
func (s *Service) Lookup(ctx context.Context, mobileNumber string) (customer entity.Customer, found bool, err error) {
	if !validator.MobileNumber(mobileNumber) {
		return entity.Customer{}, false, ErrMobileNumberInvalid
	}

	customer, err = s.directory.SearchCustomer(ctx, mobileNumber)
	if err != nil {
		if errors.Is(err, client.ErrNotFound) {
			return entity.Customer{}, false, nil
		}

		zap.L().Error("error while searching customer", zap.Error(err))
		return entity.Customer{}, false, err
	}

	return customer, true, nil
}

// Register creates a customer with the minimum record: name and mobile
// number. Address fields are filled in later through SaveAddress.
func (s *Service) Register(ctx context.Context, mobileNumber, name string) (entity.Customer, error) {
	if !validator.MobileNumber(mobileNumber) {
		return entity.Customer{}, ErrMobileNumberInvalid
	}
	if len(strings.TrimSpace(name)) == 0 {
		return entity.Customer{}, ErrNameRequired
	}

	customer, err := s.directory.AddCustomer(ctx, mobileNumber, name)
	if err != nil {
		zap.L().Error("error while adding customer", zap.Error(err))
		return entity.Customer{}, err
	}

	zap.L().Info("customer registered", zap.String("customer_id", customer.ID.String()))

	return customer, nil
}

func (s *Service) SaveAddress(ctx context.Context, mobileNumber string, customer entity.Customer) error {
	err := s.directory.UpdateCustomer(ctx, mobileNumber, customer)
	if err != nil {
		zap.L().Error("error while updating customer", zap.Error(err))
	}

	return err
}

// CustomerRemarks returns the remark history, newest first.
func (s *Service) CustomerRemarks(ctx context.Context, customerID entity.CustomerID) (entity.Remarks, error) {
	remarks, err := s.directory.Remarks(ctx, customerID)
	if err != nil {
		zap.L().Error("error while fetching remarks", zap.Error(err))
		return nil, err
	}

	sort.SliceStable(remarks, func(i, j int) bool {
		return remarks[i].CreatedAt.After(remarks[j].CreatedAt)
	})

	return remarks, nil
}

func (s *Service) LeaveRemark(ctx context.Context, customerID entity.CustomerID, advisorID entity.AdvisorID, text string) (entity.Remark, error) {
	if !validator.RemarkText(text) {
		return entity.Remark{}, ErrRemarkEmpty
	}

	remark, err := s.directory.AddRemark(ctx, customerID, advisorID, text)
	if err != nil {
		zap.L().Error("error while adding remark", zap.Error(err))
		return entity.Remark{}, err
	}

	return remark, nil
}
