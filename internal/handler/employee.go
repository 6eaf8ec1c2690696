package handler

import (
	"fmt"
)

func (h *Handler) addEmployee() error {
	lastName, err := h.prompt.Line("Surname: ")
	if err != nil {
		return err
	}
	firstName, err := h.prompt.Line("Given name: ")
	if err != nil {
		return err
	}
	age, err := h.prompt.IntAtLeast("Age: ", 1)
	if err != nil {
		return err
	}
	position, err := h.prompt.Position("Position (1-8): ")
	if err != nil {
		return err
	}
	hiredOn, err := h.prompt.Date("Date hired (mm/dd/yy): ")
	if err != nil {
		return err
	}

	emp, err := h.employees.Hire(lastName, firstName, age, position, hiredOn)
	if err != nil {
		h.report(err)
		return nil
	}

	fmt.Fprintf(h.out, "Employee added. Assigned ID No. %d\n", emp.ID)
	return nil
}

func (h *Handler) editEmployee() error {
	id, err := h.prompt.Int("Employee ID No.: ")
	if err != nil {
		return err
	}
	emp, err := h.employees.Get(id)
	if err != nil {
		h.report(err)
		return nil
	}

	for {
		fmt.Fprintf(h.out, "\n%s", emp.FormatDetails())
		fmt.Fprintln(h.out, "1. Surname\n2. Given name\n3. Age\n4. Position\n5. Done")

		choice, err := h.prompt.Int("Edit which field? ")
		if err != nil {
			return err
		}

		switch choice {
		case 1:
			if emp.LastName, err = h.prompt.Line("New surname: "); err != nil {
				return err
			}
		case 2:
			if emp.FirstName, err = h.prompt.Line("New given name: "); err != nil {
				return err
			}
		case 3:
			if emp.Age, err = h.prompt.IntAtLeast("New age: ", 1); err != nil {
				return err
			}
		case 4:
			if emp.Position, err = h.prompt.Position("New position (1-8): "); err != nil {
				return err
			}
		case 5:
			return nil
		default:
			fmt.Fprintln(h.out, "Invalid choice!")
			continue
		}

		if err := h.employees.Update(emp); err != nil {
			h.report(err)
			return nil
		}
		fmt.Fprintln(h.out, "Employee updated.")
	}
}

func (h *Handler) deleteEmployee() error {
	id, err := h.prompt.Int("Employee ID No.: ")
	if err != nil {
		return err
	}
	emp, err := h.employees.Get(id)
	if err != nil {
		h.report(err)
		return nil
	}

	fmt.Fprint(h.out, emp.FormatDetails())
	ok, err := h.prompt.Confirm("Delete this employee and all of their appointments? (Y/N): ")
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintln(h.out, "Employee not deleted.")
		return nil
	}

	_, discarded, err := h.employees.Dismiss(id)
	if err != nil {
		h.report(err)
		return nil
	}

	fmt.Fprintf(h.out, "Employee deleted. %d appointment(s) discarded.\n", discarded)
	return nil
}

func (h *Handler) deleteAllEmployees() error {
	if len(h.employees.All()) == 0 {
		fmt.Fprintln(h.out, "No employees to delete.")
		return nil
	}

	ok, err := h.prompt.Confirm("Delete ALL employees and appointments? (Y/N): ")
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintln(h.out, "No employees were deleted.")
		return nil
	}

	n := h.employees.DismissAll()
	fmt.Fprintf(h.out, "%d employee(s) deleted.\n", n)
	return nil
}

func (h *Handler) viewEmployee() error {
	id, err := h.prompt.Int("Employee ID No.: ")
	if err != nil {
		return err
	}
	emp, err := h.employees.Get(id)
	if err != nil {
		h.report(err)
		return nil
	}
	appointments, err := h.employees.Appointments(id)
	if err != nil {
		h.report(err)
		return nil
	}

	fmt.Fprint(h.out, h.employees.FormatEmployee(emp, appointments))
	return nil
}

func (h *Handler) viewAllEmployees() error {
	fmt.Fprint(h.out, h.employees.FormatList("ALL EMPLOYEES", h.employees.All()))
	return nil
}

func (h *Handler) viewByPosition() error {
	position, err := h.prompt.Position("Position (1-8): ")
	if err != nil {
		return err
	}

	fmt.Fprint(h.out, h.employees.FormatList(string(position), h.employees.ByPosition(position)))
	return nil
}
