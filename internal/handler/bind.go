package handler

import (
	"errors"
	"reflect"
	"strconv"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/GTDGit/seller_hub/internal/contract"
	"github.com/GTDGit/seller_hub/internal/models"
	"github.com/GTDGit/seller_hub/internal/utils"
)

var registerOnce sync.Once

// registerValidators teaches gin's validator to report JSON field names and
// to check Money values.
func registerValidators() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}

		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
			if name == "-" {
				return ""
			}
			if name == "" {
				return f.Name
			}
			return name
		})

		v.RegisterCustomTypeFunc(func(f reflect.Value) interface{} {
			if m, ok := f.Interface().(models.Money); ok {
				return m.Decimal.String()
			}
			return nil
		}, models.Money{})

		_ = v.RegisterValidation("money", func(fl validator.FieldLevel) bool {
			m, err := models.NewMoney(fl.Field().String())
			return err == nil && m.Storable()
		})
	})
}

// bindJSON decodes the request body into obj. On failure it writes a 400 and
// returns false.
func bindJSON(c *gin.Context, obj interface{}) bool {
	err := c.ShouldBindJSON(obj)
	if err == nil {
		return true
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		field, msg := describe(verrs[0])
		utils.ErrorField(c, 400, utils.CodeValidation, msg, field)
		return false
	}

	utils.Error(c, 400, utils.CodeInvalidRequest, "Invalid request body")
	return false
}

// describe turns a validation failure into its JSON field path and a
// "<field> is <rule>" message.
func describe(fe validator.FieldError) (string, string) {
	field := fe.Namespace()
	if _, rest, ok := strings.Cut(field, "."); ok {
		field = rest
	}

	var rule string
	switch fe.Tag() {
	case "required":
		rule = "required"
	case "oneof":
		rule = "not one of: " + strings.ReplaceAll(fe.Param(), " ", ", ")
	case "gt":
		rule = "not greater than " + fe.Param()
	case "gte", "min":
		rule = "below the minimum of " + fe.Param()
	case "len":
		rule = "not " + fe.Param() + " characters long"
	case "money":
		rule = "not a valid amount"
	case "url":
		rule = "not a valid URL"
	case "alphanum":
		rule = "not alphanumeric"
	default:
		rule = "invalid"
	}
	return field, field + " is " + rule
}

const inputKey = "contract_input"

// validateInput binds the body of route into its declared input type and
// stores the result for the handler.
func validateInput(route contract.Route) gin.HandlerFunc {
	return func(c *gin.Context) {
		in := route.NewInput()
		if !bindJSON(c, in) {
			c.Abort()
			return
		}
		c.Set(inputKey, in)
		c.Next()
	}
}

// inputOf returns the body validated by validateInput.
func inputOf[T any](c *gin.Context) *T {
	in, _ := c.MustGet(inputKey).(*T)
	return in
}

// parseID reads the :id path parameter. Non-numeric ids get a 400.
func parseID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		utils.Error(c, 400, utils.CodeInvalidID, "Invalid id")
		return 0, false
	}
	return id, true
}
