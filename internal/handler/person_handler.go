package handler

import (
	"net/http"
	"strconv"

	"github.com/lxh0508/elerp/internal/middleware"
	"github.com/lxh0508/elerp/internal/model"
	"github.com/lxh0508/elerp/internal/service"
	"github.com/lxh0508/elerp/pkg/pagination"
	"github.com/lxh0508/elerp/pkg/response"

	"github.com/gin-gonic/gin"
)

type PersonHandler struct {
	personService service.PersonService
}

func NewPersonHandler(personService service.PersonService) *PersonHandler {
	return &PersonHandler{personService: personService}
}

func (h *PersonHandler) RegisterRoutes(router *gin.RouterGroup) {
	persons := router.Group("/api/persons")
	{
		persons.POST("", middleware.RequireRole(model.RoleAdmin, model.RoleManager), h.CreatePerson)
		persons.GET("", middleware.RequireRole(model.RoleAdmin, model.RoleManager, model.RoleStaff), h.ListPersons)
		persons.GET("/:id", middleware.RequireRole(model.RoleAdmin, model.RoleManager, model.RoleStaff), h.GetPerson)
		persons.DELETE("/:id", middleware.RequireRole(model.RoleAdmin), h.DeletePerson)
	}
}

// CreatePerson creates a new person (customer, supplier or staff contact)
// @Summary      Create person
// @Tags         persons
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        payload  body      service.CreatePersonRequest  true  "Create Person Payload"
// @Success      201      {object}  response.Response{data=model.Person}
// @Failure      400      {object}  response.Response
// @Router       /api/persons [post]
func (h *PersonHandler) CreatePerson(c *gin.Context) {
	var req service.CreatePersonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	userID := c.GetInt64("userID")
	person, err := h.personService.CreatePerson(c.Request.Context(), userID, req)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
		return
	}

	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, person))
}

// GetPerson returns one person by id
// @Summary      Get person
// @Tags         persons
// @Security     BearerAuth
// @Produce      json
// @Param        id   path      int  true  "Person ID"
// @Success      200  {object}  response.Response{data=model.Person}
// @Failure      404  {object}  response.Response
// @Router       /api/persons/{id} [get]
func (h *PersonHandler) GetPerson(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid person ID"))
		return
	}

	person, err := h.personService.GetPersonByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, response.Error(http.StatusNotFound, err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, person))
}

// ListPersons returns a paginated person list
// @Summary      List persons
// @Tags         persons
// @Security     BearerAuth
// @Produce      json
// @Param        page   query     int  false  "Page number (default 1)"
// @Param        limit  query     int  false  "Items per page (default 20)"
// @Success      200    {object}  response.Response{data=object}
// @Failure      500    {object}  response.Response
// @Router       /api/persons [get]
func (h *PersonHandler) ListPersons(c *gin.Context) {
	p := pagination.Parse(c)
	persons, total, err := h.personService.ListPersons(c.Request.Context(), p.Page, p.Limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, "Failed to retrieve persons: "+err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Paged(http.StatusOK, persons, p.Meta(total)))
}

// DeletePerson removes a person
// @Summary      Delete person
// @Tags         persons
// @Security     BearerAuth
// @Produce      json
// @Param        id   path      int  true  "Person ID"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Router       /api/persons/{id} [delete]
func (h *PersonHandler) DeletePerson(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid person ID"))
		return
	}

	if err := h.personService.DeletePerson(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, "Person deleted successfully"))
}
