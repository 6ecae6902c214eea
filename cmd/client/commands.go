package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/antonio-alexander/go-bizadmin/internal/data"

	"github.com/spf13/cobra"
)

func printJSON(cmd *cobra.Command, item any) error {
	byts, err := json.MarshalIndent(item, "", " ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(byts))
	return err
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the client version",
		PersistentPreRunE: func(*cobra.Command, []string) error {
			return nil
		},
		PersistentPostRunE: func(*cobra.Command, []string) error {
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "client: go-bizadmin v%s (%s) built from: %s\n",
				Version, GitCommit, GitBranch)
			return err
		},
	}
}

func newHealthCommand(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Print the backend version",
		RunE: func(cmd *cobra.Command, _ []string) error {
			version, err := c.client.Health(cmd.Context())
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "backend: v%s\n", version)
			return err
		},
	}
}

func newLoginCommand(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "login",
		Short: "Check credentials and print the authenticated user",
		RunE: func(cmd *cobra.Command, _ []string) error {
			user, err := c.client.Login(cmd.Context(), data.LoginRequest{
				Email:    c.flags.email,
				Password: c.flags.password,
			})
			if err != nil {
				return err
			}
			return printJSON(cmd, user)
		},
	}
}

func newEmployeesCommand(c *cli) *cobra.Command {
	var search data.EmployeeSearch
	var firstName, lastName, email, department, designation string

	employees := &cobra.Command{
		Use:   "employees",
		Short: "Manage employees",
	}
	list := &cobra.Command{
		Use:   "list",
		Short: "List employees matching the search criteria",
		RunE: func(cmd *cobra.Command, _ []string) error {
			items, err := c.client.EmployeesSearch(cmd.Context(), search)
			if err != nil {
				return err
			}
			return printJSON(cmd, items)
		},
	}
	list.Flags().StringVar(&search.Search, data.ParameterSearch, "", "match name, email or employee code")
	list.Flags().StringVar(&search.Department, data.ParameterDepartment, "", "department")
	list.Flags().StringVar(&search.Status, data.ParameterStatus, "", "status")
	get := &cobra.Command{
		Use:   "get <id>",
		Short: "Read an employee",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			employee, err := c.client.EmployeeRead(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return printJSON(cmd, employee)
		},
	}
	create := &cobra.Command{
		Use:   "create",
		Short: "Create an employee",
		RunE: func(cmd *cobra.Command, _ []string) error {
			employeePartial := data.EmployeePartial{
				FirstName: &firstName,
				LastName:  &lastName,
				Email:     &email,
			}
			if department != "" {
				employeePartial.Department = &department
			}
			if designation != "" {
				employeePartial.Designation = &designation
			}
			employee, err := c.client.EmployeeCreate(cmd.Context(), employeePartial)
			if err != nil {
				return err
			}
			return printJSON(cmd, employee)
		},
	}
	create.Flags().StringVar(&firstName, "first-name", "", "first name")
	create.Flags().StringVar(&lastName, "last-name", "", "last name")
	create.Flags().StringVar(&email, "employee-email", "", "employee email")
	create.Flags().StringVar(&department, "department", "", "department")
	create.Flags().StringVar(&designation, "designation", "", "designation")
	_ = create.MarkFlagRequired("first-name")
	_ = create.MarkFlagRequired("last-name")
	_ = create.MarkFlagRequired("employee-email")
	remove := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an employee",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.client.EmployeeDelete(cmd.Context(), args[0])
		},
	}
	employees.AddCommand(list, get, create, remove)
	return employees
}

func newStatsCommand(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Print employee statistics",
		RunE: func(cmd *cobra.Command, _ []string) error {
			stats, err := c.client.EmployeeStats(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(cmd, stats)
		},
	}
}

func newUploadCommand(c *cli) *cobra.Command {
	var documentType string

	upload := &cobra.Command{
		Use:   "upload <employee-id> <file>",
		Short: "Upload a document for an employee",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			file, err := os.Open(args[1])
			if err != nil {
				return err
			}
			defer file.Close()
			document, err := c.client.DocumentUpload(cmd.Context(), args[0], documentType,
				filepath.Base(args[1]), file)
			if err != nil {
				return err
			}
			if err := printJSON(cmd, document); err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), c.client.DocumentDownloadURL(document.ID))
			return err
		},
	}
	upload.Flags().StringVar(&documentType, "type", data.DocumentTypeOther, "document type")
	return upload
}

func newDebugCommand(c *cli) *cobra.Command {
	debug := &cobra.Command{
		Use:   "debug",
		Short: "Inspect backend timers and counters",
	}
	debug.AddCommand(&cobra.Command{
		Use:   "timers",
		Short: "Print request timers",
		RunE: func(cmd *cobra.Command, _ []string) error {
			timers, err := c.client.TimersRead(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(cmd, timers)
		},
	}, &cobra.Command{
		Use:   "counters",
		Short: "Print request counters",
		RunE: func(cmd *cobra.Command, _ []string) error {
			counters, err := c.client.CountersRead(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(cmd, counters)
		},
	})
	return debug
}
