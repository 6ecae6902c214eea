package logic

import "github.com/antonio-alexander/go-bizadmin/internal/data"

var (
	departments = []data.Department{
		{ID: "engineering", Name: "Engineering"},
		{ID: "finance", Name: "Finance"},
		{ID: "human-resources", Name: "Human Resources"},
		{ID: "marketing", Name: "Marketing"},
		{ID: "operations", Name: "Operations"},
		{ID: "sales", Name: "Sales"},
	}
	designations = []data.Designation{
		{ID: "software-engineer", Name: "Software Engineer"},
		{ID: "senior-software-engineer", Name: "Senior Software Engineer"},
		{ID: "engineering-manager", Name: "Engineering Manager"},
		{ID: "hr-specialist", Name: "HR Specialist"},
		{ID: "accountant", Name: "Accountant"},
		{ID: "sales-executive", Name: "Sales Executive"},
	}
	roles = []data.Role{
		{ID: data.RoleAdmin, Name: "Administrator"},
		{ID: data.RoleHR, Name: "Human Resources"},
		{ID: data.RoleManager, Name: "Manager"},
		{ID: data.RoleEmployee, Name: "Employee"},
	}
)

func departmentsList() []*data.Department {
	items := make([]*data.Department, 0, len(departments))
	for _, department := range departments {
		items = append(items, &department)
	}
	return items
}

func designationsList() []*data.Designation {
	items := make([]*data.Designation, 0, len(designations))
	for _, designation := range designations {
		items = append(items, &designation)
	}
	return items
}

func rolesList() []*data.Role {
	items := make([]*data.Role, 0, len(roles))
	for _, role := range roles {
		items = append(items, &role)
	}
	return items
}
