// Copyright 2025 The Caseflow Authors
// SPDX-License-Identifier: Apache-2.0

package e2e

import (
	"fmt"
	"net/http"
	"net/url"
	"time"

	. "github.com/onsi/ginkgo/v2" //nolint:revive
	. "github.com/onsi/gomega"    //nolint:revive

	"github.com/caseflow/caseflow/internal/caseflow-api/models"
	"github.com/caseflow/caseflow/test/e2e/framework"
)

// The suite drives a full workflow lifecycle through the HTTP API. It
// expects a freshly bootstrapped database: the first account registered
// here must become the admin.
var _ = Describe("Workflow Lifecycle", Ordered, func() {
	var (
		anon  *framework.Client
		admin *framework.Client
		alice *framework.Client
		bob   *framework.Client

		unique        string
		adminUsername string
		aliceUsername string
		bobUsername   string

		processTypeNo    int
		intakeTaskNo     int
		reviewTaskNo     int
		dataTypeNo       int
		caseNo           int
		processNo        int
		intakeStepNo     int
		reviewStepNo     int
		busyStatusNo     int
		completeStatusNo int
	)

	const password = "e2e-test-password"

	register := func(username string) models.UserResponse {
		GinkgoHelper()
		status, env, err := anon.Do(http.MethodPost, "/auth/register",
			map[string]string{"username": username, "password": password})
		Expect(err).NotTo(HaveOccurred())
		Expect(status).To(Equal(http.StatusCreated), "register failed: %s", env.Error)

		var user models.UserResponse
		Expect(framework.DataAs(env, &user)).To(Succeed())
		return user
	}

	login := func(username string) *framework.Client {
		GinkgoHelper()
		form := url.Values{"username": {username}, "password": {password}}
		status, env, err := anon.PostForm("/auth/token", form)
		Expect(err).NotTo(HaveOccurred())
		Expect(status).To(Equal(http.StatusOK), "login failed: %s", env.Error)

		var token models.TokenResponse
		Expect(framework.DataAs(env, &token)).To(Succeed())
		Expect(token.AccessToken).NotTo(BeEmpty())
		return anon.WithToken(token.AccessToken)
	}

	BeforeAll(func() {
		anon = framework.NewClient(apiURL)
		unique = fmt.Sprintf("%d", time.Now().UnixNano())
		adminUsername = "e2e-admin-" + unique
		aliceUsername = "e2e-alice-" + unique
		bobUsername = "e2e-bob-" + unique
	})

	Context("accounts", func() {
		It("makes the first registered account the admin", func() {
			user := register(adminUsername)
			Expect(user.Role).To(Equal("admin"),
				"first account did not become admin; the suite needs a freshly bootstrapped database")
			admin = login(adminUsername)
		})

		It("makes later accounts regular users", func() {
			Expect(register(aliceUsername).Role).To(Equal("user"))
			Expect(register(bobUsername).Role).To(Equal("user"))
			alice = login(aliceUsername)
			bob = login(bobUsername)
		})

		It("rejects duplicate usernames", func() {
			status, env, err := anon.Do(http.MethodPost, "/auth/register",
				map[string]string{"username": adminUsername, "password": password})
			Expect(err).NotTo(HaveOccurred())
			Expect(status).To(Equal(http.StatusBadRequest))
			Expect(env.Error).To(Equal("Username already exists"))
		})

		It("reports the caller's identity", func() {
			status, env, err := alice.Do(http.MethodGet, "/auth/me", nil)
			Expect(err).NotTo(HaveOccurred())
			Expect(status).To(Equal(http.StatusOK))

			var user models.UserResponse
			Expect(framework.DataAs(env, &user)).To(Succeed())
			Expect(user.Username).To(Equal(aliceUsername))
		})

		It("rejects anonymous API calls", func() {
			status, env, err := anon.Do(http.MethodGet, "/cases", nil)
			Expect(err).NotTo(HaveOccurred())
			Expect(status).To(Equal(http.StatusUnauthorized))
			Expect(env.Error).To(Equal("Could not validate credentials"))
		})
	})

	Context("catalog", func() {
		It("rejects catalog writes from regular users", func() {
			status, env, err := alice.Do(http.MethodPost, "/process-types/",
				map[string]string{"description": "sneaky-" + unique})
			Expect(err).NotTo(HaveOccurred())
			Expect(status).To(Equal(http.StatusForbidden))
			Expect(env.Error).To(Equal("Insufficient permissions"))
		})

		It("has the seeded statuses", func() {
			status, env, err := admin.Do(http.MethodGet, "/statuses", nil)
			Expect(err).NotTo(HaveOccurred())
			Expect(status).To(Equal(http.StatusOK))

			var statuses []models.Status
			Expect(framework.ItemsAs(env, &statuses)).To(Succeed())
			for _, s := range statuses {
				switch s.Description {
				case "busy":
					busyStatusNo = s.StatusNo
				case "complete":
					completeStatusNo = s.StatusNo
				}
			}
			Expect(busyStatusNo).NotTo(BeZero())
			Expect(completeStatusNo).NotTo(BeZero())
		})

		It("creates a process type", func() {
			status, env, err := admin.Do(http.MethodPost, "/process-types/",
				map[string]string{"description": "onboarding-" + unique})
			Expect(err).NotTo(HaveOccurred())
			Expect(status).To(Equal(http.StatusCreated), "create process type failed: %s", env.Error)

			var pt models.ProcessType
			Expect(framework.DataAs(env, &pt)).To(Succeed())
			processTypeNo = pt.ProcessTypeNo
		})

		It("creates a definition with a materialized start task", func() {
			status, env, err := admin.Do(http.MethodPost, "/process-definitions/", map[string]any{
				"process_type_no":        processTypeNo,
				"description":            "onboarding v1",
				"start_task_description": "Intake",
				"start_task_reference":   "intake-form",
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(status).To(Equal(http.StatusCreated), "create definition failed: %s", env.Error)

			var def models.ProcessDefinition
			Expect(framework.DataAs(env, &def)).To(Succeed())
			Expect(def.StartTaskNo).NotTo(BeNil())
			Expect(def.IsActive).To(BeTrue())
			intakeTaskNo = *def.StartTaskNo

			By("adding a review task")
			status, env, err = admin.Do(http.MethodPost, "/tasks/", map[string]any{
				"process_definition_no": def.ProcessDefinitionNo,
				"description":           "Review",
				"reference":             "review-form",
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(status).To(Equal(http.StatusCreated), "create task failed: %s", env.Error)

			var review models.Task
			Expect(framework.DataAs(env, &review)).To(Succeed())
			reviewTaskNo = review.TaskNo
		})

		It("routes intake to review when the decision is approved", func() {
			status, env, err := admin.Do(http.MethodPost, "/task-rules/", map[string]any{
				"taskno":       intakeTaskNo,
				"rule":         "procdata.decision.approve == yes",
				"next_task_no": reviewTaskNo,
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(status).To(Equal(http.StatusCreated), "create task rule failed: %s", env.Error)

			By("terminating the process after review")
			status, env, err = admin.Do(http.MethodPost, "/task-rules/", map[string]any{
				"taskno": reviewTaskNo,
				"rule":   "default",
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(status).To(Equal(http.StatusCreated), "create default rule failed: %s", env.Error)
		})

		It("rejects malformed rule expressions", func() {
			status, env, err := admin.Do(http.MethodPost, "/task-rules/", map[string]any{
				"taskno": intakeTaskNo,
				"rule":   "(procdata.decision.approve == yes",
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(status).To(Equal(http.StatusUnprocessableEntity))
			Expect(env.Error).To(Equal("Invalid rule expression"))
		})

		It("creates the decision data type", func() {
			status, env, err := admin.Do(http.MethodPost, "/process-data-types/",
				map[string]string{"description": "decision"})
			Expect(err).NotTo(HaveOccurred())
			Expect(status).To(Equal(http.StatusCreated), "create data type failed: %s", env.Error)

			var dt models.ProcessDataType
			Expect(framework.DataAs(env, &dt)).To(Succeed())
			dataTypeNo = dt.ProcessDataTypeNo
		})
	})

	Context("case lifecycle", func() {
		It("opens a case with a busy intake step", func() {
			status, env, err := alice.Do(http.MethodPost, "/cases/", map[string]any{
				"client_id":       "client-" + unique,
				"client_type":     "person",
				"process_type_no": processTypeNo,
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(status).To(Equal(http.StatusCreated), "create case failed: %s", env.Error)

			var c models.Case
			Expect(framework.DataAs(env, &c)).To(Succeed())
			caseNo = c.CaseNo

			By("finding the busy step on the start task")
			status, env, err = alice.Do(http.MethodGet, fmt.Sprintf("/cases/%d/current-step", caseNo), nil)
			Expect(err).NotTo(HaveOccurred())
			Expect(status).To(Equal(http.StatusOK))

			var step models.Step
			Expect(framework.DataAs(env, &step)).To(Succeed())
			Expect(step.TaskNo).To(Equal(intakeTaskNo))
			Expect(step.StatusNo).To(Equal(busyStatusNo))
			intakeStepNo = step.StepNo
			processNo = step.ProcessNo
		})

		It("records the approval decision", func() {
			status, env, err := alice.Do(http.MethodPost, fmt.Sprintf("/processes/%d/data/", processNo), map[string]any{
				"process_data_type_no": dataTypeNo,
				"fieldname":            "approve",
				"value":                "yes",
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(status).To(Equal(http.StatusCreated), "create process data failed: %s", env.Error)
		})

		It("hides the case from other users", func() {
			status, env, err := bob.Do(http.MethodGet, fmt.Sprintf("/cases/%d", caseNo), nil)
			Expect(err).NotTo(HaveOccurred())
			Expect(status).To(Equal(http.StatusNotFound))
			Expect(env.Error).To(Equal("Case not found"))
		})

		It("stops other users from closing the step", func() {
			status, env, err := bob.Do(http.MethodPost, fmt.Sprintf("/steps/%d/close", intakeStepNo), nil)
			Expect(err).NotTo(HaveOccurred())
			Expect(status).To(Equal(http.StatusForbidden))
			Expect(env.Error).To(Equal("Insufficient permissions"))
		})

		It("advances to review when the intake step closes", func() {
			status, env, err := alice.Do(http.MethodPost, fmt.Sprintf("/steps/%d/close", intakeStepNo), nil)
			Expect(err).NotTo(HaveOccurred())
			Expect(status).To(Equal(http.StatusOK), "close step failed: %s", env.Error)

			var step models.Step
			Expect(framework.DataAs(env, &step)).To(Succeed())
			Expect(step.TaskNo).To(Equal(reviewTaskNo))
			Expect(step.StatusNo).To(Equal(busyStatusNo))
			Expect(step.ProcessNo).To(Equal(processNo))
			reviewStepNo = step.StepNo
		})

		It("completes the process after the review step closes", func() {
			status, env, err := alice.Do(http.MethodPost, fmt.Sprintf("/steps/%d/close", reviewStepNo), nil)
			Expect(err).NotTo(HaveOccurred())
			Expect(status).To(Equal(http.StatusOK), "close step failed: %s", env.Error)

			var step models.Step
			Expect(framework.DataAs(env, &step)).To(Succeed())
			Expect(step.StepNo).To(Equal(reviewStepNo))
			Expect(step.StatusNo).To(Equal(completeStatusNo))
			Expect(step.DateEnded).NotTo(BeNil())

			By("leaving the case without a busy step")
			status, env, err = alice.Do(http.MethodGet, fmt.Sprintf("/cases/%d/current-step", caseNo), nil)
			Expect(err).NotTo(HaveOccurred())
			Expect(status).To(Equal(http.StatusNotFound))
			Expect(env.Error).To(Equal("No busy step found for this case"))
		})

		It("keeps closed steps closed", func() {
			status, env, err := alice.Do(http.MethodPost, fmt.Sprintf("/steps/%d/close", reviewStepNo), nil)
			Expect(err).NotTo(HaveOccurred())
			Expect(status).To(Equal(http.StatusBadRequest))
			Expect(env.Error).To(Equal("Step is not busy"))
		})

		It("shows the full step history to the case owner", func() {
			status, env, err := alice.Do(http.MethodGet, fmt.Sprintf("/cases/%d/steps", caseNo), nil)
			Expect(err).NotTo(HaveOccurred())
			Expect(status).To(Equal(http.StatusOK))

			var steps []models.Step
			Expect(framework.ItemsAs(env, &steps)).To(Succeed())
			Expect(steps).To(HaveLen(2))
		})
	})

	Context("visibility", func() {
		It("scopes case listings to the caller", func() {
			status, env, err := bob.Do(http.MethodGet, "/cases", nil)
			Expect(err).NotTo(HaveOccurred())
			Expect(status).To(Equal(http.StatusOK))

			var cases []models.Case
			Expect(framework.ItemsAs(env, &cases)).To(Succeed())
			for _, c := range cases {
				Expect(c.CreatedBy).To(Equal(bobUsername))
			}
		})

		It("shows every case to the admin", func() {
			status, env, err := admin.Do(http.MethodGet, "/cases", nil)
			Expect(err).NotTo(HaveOccurred())
			Expect(status).To(Equal(http.StatusOK))

			var cases []models.Case
			Expect(framework.ItemsAs(env, &cases)).To(Succeed())

			var found bool
			for _, c := range cases {
				if c.CaseNo == caseNo {
					found = true
					break
				}
			}
			Expect(found).To(BeTrue(), "admin listing should include case %d", caseNo)
		})

		It("keeps the global step listing admin only", func() {
			status, _, err := alice.Do(http.MethodGet, "/steps", nil)
			Expect(err).NotTo(HaveOccurred())
			Expect(status).To(Equal(http.StatusForbidden))

			status, _, err = admin.Do(http.MethodGet, "/steps", nil)
			Expect(err).NotTo(HaveOccurred())
			Expect(status).To(Equal(http.StatusOK))
		})
	})
})
