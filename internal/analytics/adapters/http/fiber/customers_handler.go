package fiber

import (
	"context"
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"shop-analytics-service/internal/analytics/core/domain"
	"shop-analytics-service/internal/analytics/core/usecase"
)

type GetRepeatCustomersUseCase interface {
	Execute(ctx context.Context, interval string) ([]domain.RepeatCustomer, error)
}

type GetCustomerDistributionUseCase interface {
	Execute(ctx context.Context) ([]domain.CityDistribution, error)
	Cities(ctx context.Context) ([]string, error)
}

type GetNewCustomersUseCase interface {
	Execute(ctx context.Context) ([]domain.NewCustomer, error)
	Years(ctx context.Context) ([]int, error)
}

type GetCLVByCohortsUseCase interface {
	Execute(ctx context.Context, in usecase.GetCLVInput) ([]domain.CohortCLV, error)
	UnsupportedYearMessage() string
}

type CustomersHandler struct {
	repeatUC       GetRepeatCustomersUseCase
	distributionUC GetCustomerDistributionUseCase
	newCustomersUC GetNewCustomersUseCase
	clvUC          GetCLVByCohortsUseCase
	log            logrus.FieldLogger
}

func NewCustomersHandler(
	repeatUC GetRepeatCustomersUseCase,
	distributionUC GetCustomerDistributionUseCase,
	newCustomersUC GetNewCustomersUseCase,
	clvUC GetCLVByCohortsUseCase,
	log logrus.FieldLogger,
) *CustomersHandler {
	return &CustomersHandler{
		repeatUC:       repeatUC,
		distributionUC: distributionUC,
		newCustomersUC: newCustomersUC,
		clvUC:          clvUC,
		log:            log,
	}
}

func (h *CustomersHandler) Register(r fiber.Router) {
	r.Get("/new-customers", h.GetNewCustomers)
	r.Get("/new-customers/years", h.GetNewCustomerYears)
	r.Get("/repeat-customers/:interval", h.GetRepeatCustomers)
	r.Get("/customer-distribution", h.GetCustomerDistribution)
	r.Get("/distributed-cities", h.GetDistributedCities)
	r.Get("/clv-by-cohorts/:year", h.GetCLVByCohorts)
}

// GetNewCustomers godoc
// @Summary Customer names and creation dates
// @Tags Customers
// @Produce json
// @Success 200 {array} NewCustomerResponse
// @Failure 500 {object} ErrorResponse
// @Router /new-customers [get]
func (h *CustomersHandler) GetNewCustomers(c *fiber.Ctx) error {
	customers, err := h.newCustomersUC.Execute(c.UserContext())
	if err != nil {
		return internalError(c, h.log, err)
	}

	resp := make([]NewCustomerResponse, 0, len(customers))
	for _, nc := range customers {
		resp = append(resp, NewCustomerResponse{
			FirstName: nc.FirstName,
			LastName:  nc.LastName,
			CreatedAt: nc.CreatedAt,
		})
	}
	return c.Status(http.StatusOK).JSON(resp)
}

// GetNewCustomerYears godoc
// @Summary List years in which customers were created
// @Tags Customers
// @Produce json
// @Success 200 {array} int
// @Failure 500 {object} ErrorResponse
// @Router /new-customers/years [get]
func (h *CustomersHandler) GetNewCustomerYears(c *fiber.Ctx) error {
	years, err := h.newCustomersUC.Years(c.UserContext())
	if err != nil {
		return internalError(c, h.log, err)
	}
	if years == nil {
		years = []int{}
	}
	return c.Status(http.StatusOK).JSON(years)
}

// GetRepeatCustomers godoc
// @Summary Repeat customers
// @Description Customers with more than one order in the same time bucket
// @Tags Customers
// @Produce json
// @Param interval path string true "daily | monthly | quarterly | yearly"
// @Success 200 {array} RepeatCustomerResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /repeat-customers/{interval} [get]
func (h *CustomersHandler) GetRepeatCustomers(c *fiber.Ctx) error {
	interval := c.Params("interval")
	if _, ok := domain.ParseInterval(interval); !ok {
		return badRequest(c, "invalid_interval", invalidIntervalMessage)
	}

	repeat, err := h.repeatUC.Execute(c.UserContext(), interval)
	if err != nil {
		return internalError(c, h.log, err)
	}

	resp := make([]RepeatCustomerResponse, 0, len(repeat))
	for _, r := range repeat {
		resp = append(resp, RepeatCustomerResponse{
			CustomerID:     r.CustomerID,
			FirstName:      r.FirstName,
			LastName:       r.LastName,
			TotalPurchases: r.TotalPurchases,
			TimePeriod:     toPeriod(r.TimePeriod),
		})
	}
	return c.Status(http.StatusOK).JSON(resp)
}

// GetCustomerDistribution godoc
// @Summary Customers per city
// @Tags Customers
// @Produce json
// @Success 200 {array} CityDistributionResponse
// @Failure 500 {object} ErrorResponse
// @Router /customer-distribution [get]
func (h *CustomersHandler) GetCustomerDistribution(c *fiber.Ctx) error {
	dist, err := h.distributionUC.Execute(c.UserContext())
	if err != nil {
		return internalError(c, h.log, err)
	}

	resp := make([]CityDistributionResponse, 0, len(dist))
	for _, d := range dist {
		names := make([]CustomerFirstName, 0, len(d.Names))
		for _, n := range d.Names {
			names = append(names, CustomerFirstName{FirstName: n})
		}
		resp = append(resp, CityDistributionResponse{
			City:  d.City,
			Count: d.Count,
			Names: names,
		})
	}
	return c.Status(http.StatusOK).JSON(resp)
}

// GetDistributedCities godoc
// @Summary Distinct customer cities
// @Tags Customers
// @Produce json
// @Success 200 {array} CityResponse
// @Failure 500 {object} ErrorResponse
// @Router /distributed-cities [get]
func (h *CustomersHandler) GetDistributedCities(c *fiber.Ctx) error {
	cities, err := h.distributionUC.Cities(c.UserContext())
	if err != nil {
		return internalError(c, h.log, err)
	}

	resp := make([]CityResponse, 0, len(cities))
	for _, city := range cities {
		resp = append(resp, CityResponse{City: city})
	}
	return c.Status(http.StatusOK).JSON(resp)
}

// GetCLVByCohorts godoc
// @Summary Customer lifetime value by acquisition month
// @Tags Customers
// @Produce json
// @Param year path string true "Cohort year"
// @Success 200 {array} CohortCLVResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /clv-by-cohorts/{year} [get]
func (h *CustomersHandler) GetCLVByCohorts(c *fiber.Ctx) error {
	cohorts, err := h.clvUC.Execute(c.UserContext(), usecase.GetCLVInput{Year: c.Params("year")})
	if err != nil {
		if errors.Is(err, usecase.ErrUnsupportedYear) {
			return badRequest(c, "invalid_year", h.clvUC.UnsupportedYearMessage())
		}
		return internalError(c, h.log, err)
	}

	resp := make([]CohortCLVResponse, 0, len(cohorts))
	for _, co := range cohorts {
		names := co.CustomerNames
		if names == nil {
			names = []string{}
		}
		resp = append(resp, CohortCLVResponse{
			Cohort:        co.Cohort,
			AverageCLV:    co.AverageCLV.InexactFloat64(),
			CustomerNames: names,
		})
	}
	return c.Status(http.StatusOK).JSON(resp)
}
