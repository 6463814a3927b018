package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	"go-calc-api/internal/config"
	"go-calc-api/internal/model"
	"go-calc-api/pkg/apierror"
)

type CalcService struct {
	scenarios ScenarioStore
	listScope string
}

func NewCalcService(scenarios ScenarioStore, listScope string) *CalcService {
	return &CalcService{scenarios: scenarios, listScope: listScope}
}

// Compute coerces the two operands and returns their sum and quotient.
// Division by zero is a defined nil result, never an error.
func (s *CalcService) Compute(a any, b any) (float64, *float64, error) {
	numA, err := toFloat(a)
	if err != nil {
		return 0, nil, apierror.InvalidInput("invalid input numbers", "a")
	}

	numB, err := toFloat(b)
	if err != nil {
		return 0, nil, apierror.InvalidInput("invalid input numbers", "b")
	}

	var division *float64
	if numB != 0 {
		quotient := numA / numB
		division = &quotient
	}

	return numA + numB, division, nil
}

// CalculateAndSave computes and persists the result as a scenario
// owned by the calling user.
func (s *CalcService) CalculateAndSave(ctx context.Context, userID string, req model.CalculateRequest) (model.Scenario, error) {
	sum, division, err := s.Compute(req.A, req.B)
	if err != nil {
		return model.Scenario{}, err
	}

	numA, _ := toFloat(req.A)
	numB, _ := toFloat(req.B)

	scenario := model.Scenario{
		UserID:    userID,
		Name:      strings.TrimSpace(req.Name),
		Project:   strings.TrimSpace(req.Project),
		OperandA:  numA,
		OperandB:  numB,
		Sum:       sum,
		Division:  division,
		CreatedAt: time.Now().UTC(),
	}

	saved, err := s.scenarios.Create(ctx, scenario)
	if err != nil {
		return model.Scenario{}, fmt.Errorf("save scenario: %w", err)
	}

	return saved, nil
}

// ListScenarios returns records per the configured policy: every
// scenario under the global scope, the caller's own otherwise.
func (s *CalcService) ListScenarios(ctx context.Context, userID string) ([]model.Scenario, error) {
	if s.listScope == config.ScopeGlobal {
		return s.scenarios.List(ctx)
	}
	return s.scenarios.ListByOwner(ctx, userID)
}

// DeleteScenario removes a record the caller owns. A record owned by
// someone else is left intact.
func (s *CalcService) DeleteScenario(ctx context.Context, userID string, id int64) error {
	scenario, err := s.scenarios.FindByID(ctx, id)
	if errors.Is(err, model.ErrScenarioNotFound) {
		return apierror.New("NOT_FOUND", "scenario not found", strconv.FormatInt(id, 10), http.StatusNotFound)
	}
	if err != nil {
		return fmt.Errorf("find scenario: %w", err)
	}

	if scenario.UserID != userID {
		return apierror.NotAuthorized("scenario belongs to another user")
	}

	return s.scenarios.Delete(ctx, id)
}

// toFloat accepts the forms operands actually arrive in: JSON numbers
// decode to float64, form-ish clients send strings. Non-finite values
// are refused: ParseFloat accepts "Inf" and friends, but a NaN or Inf
// operand cannot be encoded back into a JSON response.
func toFloat(v any) (float64, error) {
	switch n := v.(type) {
	case float64:
		if math.IsNaN(n) || math.IsInf(n, 0) {
			return 0, fmt.Errorf("not a finite number: %v", n)
		}
		return n, nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return 0, fmt.Errorf("not a finite number: %q", n)
		}
		return f, nil
	default:
		return 0, fmt.Errorf("unsupported operand type %T", v)
	}
}
