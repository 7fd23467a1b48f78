package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/venra/site/waitlist"
)

// fieldLabels are the form labels used in validation messages.
var fieldLabels = map[waitlist.Field]string{
	waitlist.FieldName:          "Name",
	waitlist.FieldEmail:         "Email",
	waitlist.FieldPhone:         "Phone Number",
	waitlist.FieldCommunityName: "HOA Community Name",
	waitlist.FieldHOASize:       "Community Size",
}

// ParseIntParam parses an integer parameter from the URL with consistent error handling
func ParseIntParam(c *fiber.Ctx, paramName string) (int, error) {
	value, err := c.ParamsInt(paramName)
	if err != nil || value < 0 {
		return 0, fiber.NewError(fiber.StatusBadRequest, "Invalid parameter: "+paramName)
	}
	return value, nil
}

// parseWaitlistForm reads the posted intake form.
func parseWaitlistForm(c *fiber.Ctx) (waitlist.Form, error) {
	var form waitlist.Form
	if err := c.BodyParser(&form); err != nil {
		return waitlist.Form{}, fiber.NewError(fiber.StatusBadRequest, "Invalid form data")
	}
	return form, nil
}

// missingFieldsMessage lists the missing fields in form order.
func missingFieldsMessage(missing []waitlist.Field) string {
	if len(missing) == 0 {
		return ""
	}
	labels := make([]string, 0, len(missing))
	for _, field := range missing {
		labels = append(labels, fieldLabels[field])
	}
	return "Please fill in: " + strings.Join(labels, ", ")
}
