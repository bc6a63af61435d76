package dto

import (
	"fmt"
	"net/url"
	"regexp"
	"time"

	"webhook-resender/internal/core/domain"
	"webhook-resender/internal/core/ports"
	"webhook-resender/pkg/apperror"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var safeStringRe = regexp.MustCompile(`^[a-zA-Z0-9_\-\.]+$`)

const (
	dateLayout  = "2006-01-02"
	maxSpanDays = 31
)

// listQueryParams is the strict whitelist for the listing endpoint.
// Anything outside it is rejected at the boundary.
var listQueryParams = map[string]bool{
	"startDate":  true,
	"endDate":    true,
	"product":    true,
	"kind":       true,
	"type":       true,
	"serviceIds": true,
	"page":       true,
	"limit":      true,
}

func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("safe_id", validateSafeID)
	}
}

// validateSafeID allows alphanumeric, underscore, dash, and dot.
func validateSafeID(fl validator.FieldLevel) bool {
	return safeStringRe.MatchString(fl.Field().String())
}

// CheckListQueryParams rejects unknown query parameters so typos like
// ?startdate= fail loudly instead of silently widening the result set.
func CheckListQueryParams(query url.Values) error {
	var unknown []string
	for key := range query {
		if !listQueryParams[key] {
			unknown = append(unknown, fmt.Sprintf("parâmetro desconhecido: %s", key))
		}
	}
	if len(unknown) > 0 {
		return apperror.InvalidFields(unknown)
	}
	return nil
}

// ToListParams validates the query semantics and converts it into
// repository-level listing parameters. endDate is widened to the end of
// its day so a single-day range still matches records created that day.
func (q ListProtocolsQuery) ToListParams(cedenteID string) (ports.ProtocolListParams, error) {
	start, err := time.Parse(dateLayout, q.StartDate)
	if err != nil {
		return ports.ProtocolListParams{}, apperror.InvalidFields([]string{"startDate inválido, use o formato YYYY-MM-DD"})
	}
	end, err := time.Parse(dateLayout, q.EndDate)
	if err != nil {
		return ports.ProtocolListParams{}, apperror.InvalidFields([]string{"endDate inválido, use o formato YYYY-MM-DD"})
	}
	if end.Before(start) {
		return ports.ProtocolListParams{}, apperror.InvalidFields([]string{"endDate deve ser maior ou igual a startDate"})
	}
	if end.Sub(start) > maxSpanDays*24*time.Hour {
		return ports.ProtocolListParams{}, apperror.InvalidFields([]string{fmt.Sprintf("intervalo máximo entre startDate e endDate é de %d dias", maxSpanDays)})
	}

	params := ports.ProtocolListParams{
		CedenteID: cedenteID,
		StartDate: start,
		EndDate:   end.Add(24*time.Hour - time.Second),
		Page:      q.Page,
		Limit:     q.Limit,
	}

	if q.Product != "" {
		product := domain.Product(q.Product)
		params.Product = &product
	}
	if q.Kind != "" {
		kind := q.Kind
		params.Kind = &kind
	}
	if q.Type != "" {
		evType := q.Type
		params.Type = &evType
	}
	params.ServiceIDs = q.ServiceIDs

	return params, nil
}
