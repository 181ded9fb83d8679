// Copyright 2025 The Caseflow Authors
// SPDX-License-Identifier: Apache-2.0

package steps

import (
	"context"
	"errors"
	"log/slog"

	"github.com/jmoiron/sqlx"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/caseflow/caseflow/internal/caseflow-api/models"
	"github.com/caseflow/caseflow/internal/caseflow-api/services"
	"github.com/caseflow/caseflow/internal/caseflow-api/store"
	"github.com/caseflow/caseflow/internal/rules"
)

// Advancement outcomes reported on the steps metric.
const (
	outcomeAdvanced         = "advanced"
	outcomeProcessCompleted = "process_completed"
)

var stepsAdvanced = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "caseflow_steps_advanced_total",
		Help: "Steps closed through the workflow advancer, by outcome.",
	},
	[]string{"outcome"},
)

// stepsService advances workflows. The close operation runs as one
// transaction with the step row locked, so concurrent closers of the same
// step serialize and the loser sees a non-busy step.
type stepsService struct {
	store  *store.Store
	logger *slog.Logger
}

var _ Service = (*stepsService)(nil)

// NewService creates a new step service without authorization.
func NewService(st *store.Store, logger *slog.Logger) Service {
	return &stepsService{
		store:  st,
		logger: logger,
	}
}

func (s *stepsService) CloseStep(ctx context.Context, stepNo int, ruleData map[string]string) (*models.Step, error) {
	actor, ok := services.ActorFromContext(ctx)
	if !ok {
		return nil, services.ErrForbidden
	}

	s.logger.Debug("closing step", "stepno", stepNo, "rule_data_keys", len(ruleData), "username", actor.Username)

	var (
		result  *models.Step
		outcome string
	)
	err := s.store.InTx(ctx, func(tx *sqlx.Tx) error {
		step, err := s.store.GetStepForUpdate(ctx, tx, stepNo)
		if errors.Is(err, store.ErrNotFound) {
			return ErrStepNotFound
		}
		if err != nil {
			return err
		}

		busy, err := s.resolveStatus(ctx, tx, store.StatusBusy)
		if err != nil {
			return err
		}
		complete, err := s.resolveStatus(ctx, tx, store.StatusComplete)
		if err != nil {
			return err
		}

		if step.StatusNo != busy.StatusNo {
			return ErrStepNotBusy
		}

		if !actor.IsAdmin() {
			owner, err := s.store.CaseOwnerForStep(ctx, tx, step.StepNo)
			if err != nil {
				return err
			}
			if owner != actor.Username {
				return services.ErrForbidden
			}
		}

		selected, err := s.selectRule(ctx, tx, step)
		if err != nil {
			return err
		}

		closed, err := s.store.CompleteStep(ctx, tx, step.StepNo, complete.StatusNo)
		if err != nil {
			return err
		}

		// A rule without a next task terminates the whole process.
		if selected.NextTaskNo == nil {
			if err := s.store.CompleteProcess(ctx, tx, step.ProcessNo, complete.StatusNo); err != nil {
				return err
			}
			result = closed
			outcome = outcomeProcessCompleted
			return nil
		}

		next, err := s.store.CreateStep(ctx, tx, step.ProcessNo, *selected.NextTaskNo, busy.StatusNo, actor.Username)
		if err != nil {
			return err
		}
		result = next
		outcome = outcomeAdvanced
		return nil
	})
	if err != nil {
		return nil, err
	}

	stepsAdvanced.WithLabelValues(outcome).Inc()
	s.logger.Info("step closed", "stepno", stepNo, "outcome", outcome, "username", actor.Username)
	return result, nil
}

func (s *stepsService) ListSteps(ctx context.Context) ([]models.Step, error) {
	return s.store.ListSteps(ctx, s.store.DB())
}

// selectRule picks the outgoing rule for the step's task: the first rule in
// creation order whose expression holds against the process data snapshot,
// otherwise the default rule. Malformed rules are skipped with a warning.
func (s *stepsService) selectRule(ctx context.Context, tx *sqlx.Tx, step *models.Step) (*models.TaskRule, error) {
	snapshot, err := s.store.LoadRuleSnapshot(ctx, tx, step.ProcessNo)
	if err != nil {
		return nil, err
	}

	taskRules, err := s.store.ListTaskRulesByTask(ctx, tx, step.TaskNo)
	if err != nil {
		return nil, err
	}

	var selected, defaultRule *models.TaskRule
	for i := range taskRules {
		tr := &taskRules[i]
		if rules.IsDefault(tr.Rule) {
			if defaultRule == nil {
				defaultRule = tr
			}
			continue
		}
		if selected != nil {
			continue
		}
		matched, err := rules.Evaluate(tr.Rule, snapshot)
		if err != nil {
			s.logger.Warn("skipping malformed task rule", "taskruleno", tr.TaskRuleNo, "rule", tr.Rule, "error", err)
			continue
		}
		if matched {
			selected = tr
		}
	}

	if selected == nil {
		selected = defaultRule
	}
	if selected == nil {
		return nil, ErrNoRuleMatched
	}
	return selected, nil
}

// resolveStatus looks a required status up by description. A missing status
// means the engine was never seeded and is a configuration error.
func (s *stepsService) resolveStatus(ctx context.Context, tx *sqlx.Tx, description string) (*models.Status, error) {
	status, err := s.store.GetStatusByDescription(ctx, tx, description)
	if errors.Is(err, store.ErrNotFound) {
		s.logger.Error("required status missing", "description", description)
		return nil, services.ErrConfiguration
	}
	if err != nil {
		return nil, err
	}
	return status, nil
}
