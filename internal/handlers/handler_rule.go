package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/cashmap/internal/core/ports/services"
	"github.com/SscSPs/cashmap/internal/dto"
	"github.com/SscSPs/cashmap/internal/middleware"
	"github.com/gin-gonic/gin"
)

// ruleHandler handles categorisation rules and ad-hoc categorisation.
type ruleHandler struct {
	ruleService portssvc.MappingRuleSvcFacade
	categoriser portssvc.CategorisationSvc
}

func registerRuleRoutes(rg *gin.RouterGroup, rules portssvc.MappingRuleSvcFacade, categoriser portssvc.CategorisationSvc, allowSeed bool) {
	h := &ruleHandler{ruleService: rules, categoriser: categoriser}

	rg.POST("/categorise", h.categorise)

	group := rg.Group("/rules")
	{
		group.GET("", h.listRules)
		group.POST("", h.createRule)
		if allowSeed {
			group.POST("/seed", h.seedRules)
		}
	}
}

// categorise godoc
// @Summary Categorise descriptions
// @Description Resolves each description through the tiered rules and the category classifier without storing anything
// @Tags rules
// @Accept json
// @Produce json
// @Param request body dto.CategoriseRequest true "Descriptions to categorise"
// @Success 200 {object} dto.CategoriseResponse
// @Failure 400 {object} map[string]string "Invalid request"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /categorise [post]
func (h *ruleHandler) categorise(c *gin.Context) {
	ownerID, ok := requireOwner(c)
	if !ok {
		return
	}

	var req dto.CategoriseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request format", err)
		return
	}

	results, err := h.categoriser.CategoriseBatch(c.Request.Context(), req.Descriptions, ownerID, middleware.GetOrganisationIDFromContext(c))
	if err != nil {
		respondError(c, err, "Failed to categorise descriptions")
		return
	}

	resp := dto.CategoriseResponse{Results: make([]dto.CategoriseResult, len(req.Descriptions))}
	for i, desc := range req.Descriptions {
		resp.Results[i] = dto.CategoriseResult{Description: desc, Result: results[i]}
	}
	c.JSON(http.StatusOK, resp)
}

// listRules godoc
// @Summary List categorisation rules
// @Description Lists the rules that apply to the caller: system and learned rules, the caller's own rules and their organisation's adviser rules
// @Tags rules
// @Produce json
// @Success 200 {array} dto.RuleResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /rules [get]
func (h *ruleHandler) listRules(c *gin.Context) {
	ownerID, ok := requireOwner(c)
	if !ok {
		return
	}

	rules, err := h.ruleService.ListRules(c.Request.Context(), ownerID, middleware.GetOrganisationIDFromContext(c))
	if err != nil {
		respondError(c, err, "Failed to list rules")
		return
	}
	c.JSON(http.StatusOK, dto.ToListRuleResponse(rules))
}

// createRule godoc
// @Summary Create a categorisation rule
// @Description Adds a USER rule for the caller, or an ADVISER rule for the caller's organisation
// @Tags rules
// @Accept json
// @Produce json
// @Param rule body dto.CreateRuleRequest true "Rule details"
// @Success 201 {object} dto.RuleResponse
// @Failure 400 {object} map[string]string "Invalid rule or unknown category"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 409 {object} map[string]string "Rule already exists"
// @Security BearerAuth
// @Router /rules [post]
func (h *ruleHandler) createRule(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	ownerID, ok := requireOwner(c)
	if !ok {
		return
	}

	var req dto.CreateRuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request format", err)
		return
	}

	rule, err := h.ruleService.CreateRule(c.Request.Context(), req, ownerID, middleware.GetOrganisationIDFromContext(c))
	if err != nil {
		respondError(c, err, "Failed to create rule")
		return
	}

	logger.Info("Rule created", slog.String("rule_id", rule.RuleID), slog.String("source", string(rule.Source)))
	c.JSON(http.StatusCreated, dto.ToRuleResponse(rule))
}

// seedRules godoc
// @Summary Install the built-in rules
// @Description Creates the system categories and SYSTEM rules; existing entries are left untouched
// @Tags rules
// @Produce json
// @Success 200 {object} map[string]int
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /rules/seed [post]
func (h *ruleHandler) seedRules(c *gin.Context) {
	if _, ok := requireOwner(c); !ok {
		return
	}

	inserted, err := h.ruleService.SeedSystemRules(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to seed rules")
		return
	}
	c.JSON(http.StatusOK, gin.H{"inserted": inserted})
}
