package fiber

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"shop-analytics-service/internal/analytics/core/domain"
	"shop-analytics-service/internal/analytics/core/usecase"
)

type GetSalesOverTimeUseCase interface {
	Execute(ctx context.Context, in usecase.GetSalesInput) ([]domain.SalesBucket, error)
}

type GetSalesGrowthUseCase interface {
	Execute(ctx context.Context, in usecase.GetSalesInput) ([]domain.GrowthPoint, error)
}

type GetSalesYearsUseCase interface {
	Execute(ctx context.Context) ([]int, error)
}

type SalesHandler struct {
	salesUC  GetSalesOverTimeUseCase
	growthUC GetSalesGrowthUseCase
	yearsUC  GetSalesYearsUseCase
	log      logrus.FieldLogger
}

func NewSalesHandler(salesUC GetSalesOverTimeUseCase, growthUC GetSalesGrowthUseCase, yearsUC GetSalesYearsUseCase, log logrus.FieldLogger) *SalesHandler {
	return &SalesHandler{salesUC: salesUC, growthUC: growthUC, yearsUC: yearsUC, log: log}
}

func (h *SalesHandler) Register(r fiber.Router) {
	r.Get("/sales/intervals", h.GetIntervals)
	r.Get("/sales/years", h.GetYears)
	r.Get("/sales/:interval/:year", h.GetSales)
	r.Get("/sales-growth/:interval/:year", h.GetSalesGrowth)
}

// GetIntervals godoc
// @Summary List supported intervals
// @Tags Sales
// @Produce json
// @Success 200 {array} string
// @Router /sales/intervals [get]
func (h *SalesHandler) GetIntervals(c *fiber.Ctx) error {
	intervals := domain.Intervals()
	resp := make([]string, 0, len(intervals))
	for _, i := range intervals {
		resp = append(resp, i.String())
	}
	return c.Status(http.StatusOK).JSON(resp)
}

// GetYears godoc
// @Summary List years with orders
// @Tags Sales
// @Produce json
// @Success 200 {array} int
// @Failure 500 {object} ErrorResponse
// @Router /sales/years [get]
func (h *SalesHandler) GetYears(c *fiber.Ctx) error {
	years, err := h.yearsUC.Execute(c.UserContext())
	if err != nil {
		return internalError(c, h.log, err)
	}
	if years == nil {
		years = []int{}
	}
	return c.Status(http.StatusOK).JSON(years)
}

// GetSales godoc
// @Summary Sales over time
// @Description Sums shop money per time bucket for one year
// @Tags Sales
// @Produce json
// @Param interval path string true "daily | monthly | quarterly | yearly"
// @Param year path int true "Year"
// @Success 200 {array} SalesBucketResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /sales/{interval}/{year} [get]
func (h *SalesHandler) GetSales(c *fiber.Ctx) error {
	in, errResp := salesInput(c)
	if errResp != nil {
		return c.Status(http.StatusBadRequest).JSON(errResp)
	}

	buckets, err := h.salesUC.Execute(c.UserContext(), in)
	if err != nil {
		return internalError(c, h.log, err)
	}

	resp := make([]SalesBucketResponse, 0, len(buckets))
	for _, b := range buckets {
		resp = append(resp, SalesBucketResponse{
			BucketKey:  toPeriod(b.Key),
			TotalSales: b.TotalSales.InexactFloat64(),
		})
	}
	return c.Status(http.StatusOK).JSON(resp)
}

// GetSalesGrowth godoc
// @Summary Sales growth rate
// @Description Period-over-period percentage change of sales within one year
// @Tags Sales
// @Produce json
// @Param interval path string true "daily | monthly | quarterly | yearly"
// @Param year path int true "Year"
// @Success 200 {array} GrowthRateResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /sales-growth/{interval}/{year} [get]
func (h *SalesHandler) GetSalesGrowth(c *fiber.Ctx) error {
	in, errResp := salesInput(c)
	if errResp != nil {
		return c.Status(http.StatusBadRequest).JSON(errResp)
	}

	points, err := h.growthUC.Execute(c.UserContext(), in)
	if err != nil {
		return internalError(c, h.log, err)
	}

	resp := make([]GrowthRateResponse, 0, len(points))
	for _, p := range points {
		resp = append(resp, GrowthRateResponse{
			Period:     toPeriod(p.Period),
			GrowthRate: p.GrowthRate.InexactFloat64(),
		})
	}
	return c.Status(http.StatusOK).JSON(resp)
}

func salesInput(c *fiber.Ctx) (usecase.GetSalesInput, *ErrorResponse) {
	interval := c.Params("interval")
	if _, ok := domain.ParseInterval(interval); !ok {
		return usecase.GetSalesInput{}, &ErrorResponse{Error: "invalid_interval", Message: invalidIntervalMessage}
	}

	year, err := strconv.Atoi(c.Params("year"))
	if err != nil {
		return usecase.GetSalesInput{}, &ErrorResponse{Error: "invalid_year", Message: invalidYearMessage}
	}

	return usecase.GetSalesInput{Interval: interval, Year: year}, nil
}
