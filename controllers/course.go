// controllers/course.go
package controllers

import (
	"net/http"

	"clinicpro-backend/services"
	"clinicpro-backend/utils"

	"github.com/gin-gonic/gin"
)

type CourseController struct {
	Clinic *services.ClinicService
}

func (cc *CourseController) CreateCourse(c *gin.Context) {
	actor, ok := currentUser(c)
	if !ok {
		return
	}

	var input services.NewCourse
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	course, err := cc.Clinic.AddCourse(actor, input)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, course)
}

func (cc *CourseController) GetCourses(c *gin.Context) {
	c.JSON(http.StatusOK, cc.Clinic.Snapshot().Courses)
}

func (cc *CourseController) UpdateCourse(c *gin.Context) {
	actor, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var input services.CourseUpdate
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if err := cc.Clinic.UpdateCourse(actor, id, input); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Course updated successfully"})
}

func (cc *CourseController) DeleteCourse(c *gin.Context) {
	actor, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := cc.Clinic.DeleteCourse(actor, id); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Course deleted successfully"})
}
