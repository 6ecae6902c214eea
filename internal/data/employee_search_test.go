package data_test

import (
	"net/url"
	"testing"

	"github.com/antonio-alexander/go-bizadmin/internal/data"

	"github.com/stretchr/testify/assert"
)

func TestEmployeeSearchParams(t *testing.T) {
	search := data.EmployeeSearch{
		Search:     "ada",
		Department: "Engineering",
		Status:     data.EmployeeStatusActive,
	}
	params := search.ToParams()
	assert.Equal(t, "ada", params.Get(data.ParameterSearch))
	assert.Equal(t, "Engineering", params.Get(data.ParameterDepartment))
	assert.Equal(t, "active", params.Get(data.ParameterStatus))

	var parsed data.EmployeeSearch
	parsed.FromParams(params)
	assert.Equal(t, search, parsed)

	empty := data.EmployeeSearch{}
	assert.Empty(t, empty.ToParams().Encode())

	parsed = data.EmployeeSearch{}
	parsed.FromParams(url.Values{"SEARCH": {"x"}, "unknown": {"y"}})
	assert.Equal(t, data.EmployeeSearch{Search: "x"}, parsed)
}

func TestEmployeeSearchMatches(t *testing.T) {
	employee := &data.Employee{
		ID:           "1",
		EmployeeCode: "EMP-0001",
		FirstName:    "Ada",
		LastName:     "Lovelace",
		Email:        "ada@example.com",
		Department:   "Engineering",
		Status:       data.EmployeeStatusActive,
	}
	cases := map[string]struct {
		search  data.EmployeeSearch
		matches bool
	}{
		"empty":            {data.EmployeeSearch{}, true},
		"name":             {data.EmployeeSearch{Search: "lovelace"}, true},
		"full name":        {data.EmployeeSearch{Search: "ada love"}, true},
		"email":            {data.EmployeeSearch{Search: "@example"}, true},
		"code":             {data.EmployeeSearch{Search: "emp-0001"}, true},
		"department":       {data.EmployeeSearch{Department: "engineering"}, true},
		"wrong department": {data.EmployeeSearch{Department: "Finance"}, false},
		"wrong status":     {data.EmployeeSearch{Status: data.EmployeeStatusOnLeave}, false},
		"no match":         {data.EmployeeSearch{Search: "babbage"}, false},
	}
	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, c.matches, c.search.Matches(employee))
		})
	}
}
