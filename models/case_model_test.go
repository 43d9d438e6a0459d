package models_test

import (
	"testing"
	"time"

	"ortho-app/models"

	"github.com/stretchr/testify/assert"
)

func TestPersonalCase_FullName(t *testing.T) {
	t.Run("should join last, first and middle name", func(t *testing.T) {
		c := models.PersonalCase{LastName: "Иванов", FirstName: "Иван", MiddleName: "Иванович"}
		assert.Equal(t, "Иванов Иван Иванович", c.FullName())
	})

	t.Run("should skip empty middle name", func(t *testing.T) {
		c := models.PersonalCase{LastName: "Иванов", FirstName: "Иван"}
		assert.Equal(t, "Иванов Иван", c.FullName())
	})
}

func TestPersonalCase_Age(t *testing.T) {
	c := models.PersonalCase{BirthDate: "2000-06-15"}

	t.Run("should not count the birthday before it occurs", func(t *testing.T) {
		at := time.Date(2024, 6, 14, 12, 0, 0, 0, time.UTC)
		assert.Equal(t, 23, c.Age(at))
	})

	t.Run("should count the birthday on the day itself", func(t *testing.T) {
		at := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)
		assert.Equal(t, 24, c.Age(at))
	})

	t.Run("should count the birthday after it occurred", func(t *testing.T) {
		at := time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)
		assert.Equal(t, 24, c.Age(at))
	})

	t.Run("should return zero for malformed birth date", func(t *testing.T) {
		broken := models.PersonalCase{BirthDate: "not-a-date"}
		assert.Equal(t, 0, broken.Age(time.Now()))
	})
}
