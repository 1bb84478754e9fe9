package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strconv"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/zrohdes/ai-survey-platform/pkg/utils"
)

var registerTagNames sync.Once

// UseJSONFieldNames makes validation messages refer to fields by their JSON names.
func UseJSONFieldNames() {
	registerTagNames.Do(func() {
		if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
			v.RegisterTagNameFunc(func(f reflect.StructField) string {
				name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
				if name == "-" || name == "" {
					return f.Name
				}
				return name
			})
		}
	})
}

type validatable interface {
	Validate() error
}

// bindJSON decodes and validates the body, writing a 400 on failure.
func bindJSON(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, validationMessage(err))
		return false
	}
	if v, ok := req.(validatable); ok {
		if err := v.Validate(); err != nil {
			utils.RespondError(c, http.StatusBadRequest, err.Error())
			return false
		}
	}
	return true
}

func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return "Invalid request format: " + err.Error()
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fieldMessage(fe))
	}
	return strings.Join(msgs, "; ")
}

func fieldMessage(fe validator.FieldError) string {
	field := fieldPath(fe)
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "required_if":
		return field + " is required when " + conditionText(fe.Param())
	case "email":
		return field + " must be a valid email address"
	case "oneof":
		return field + " must be one of: " + strings.ReplaceAll(fe.Param(), " ", ", ")
	case "min":
		return field + " must be at least " + fe.Param()
	case "max":
		return field + " must be at most " + fe.Param()
	}
	return fmt.Sprintf("%s failed the '%s' rule", field, fe.Tag())
}

// conditionText renders a required_if param such as "Method courier" as "method is courier".
func conditionText(param string) string {
	parts := strings.Fields(param)
	conds := make([]string, 0, len(parts)/2)
	for i := 0; i+1 < len(parts); i += 2 {
		conds = append(conds, lowerFirst(parts[i])+" is "+parts[i+1])
	}
	return strings.Join(conds, " and ")
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}

// fieldPath drops the request struct name from the namespace: "CreateSurveyRequest.questions[0].type" -> "questions[0].type".
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}

// pathID parses a positive integer path parameter, writing a 400 on failure.
func pathID(c *gin.Context, name, entity string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id < 1 {
		utils.RespondError(c, http.StatusBadRequest, fmt.Sprintf("Invalid %s id", entity))
		return 0, false
	}
	return id, true
}
