package parser

import (
	"github.com/tabuddy/tabuddy/internal/application/command"
	"github.com/tabuddy/tabuddy/internal/domain/student"
)

func parseAddStudent(args string) (command.Command, error) {
	am := Tokenize(args, PrefixModuleName, PrefixName, PrefixStudentID, PrefixEmail, PrefixTeleHandle)
	if !am.ArePrefixesPresent(PrefixModuleName, PrefixName, PrefixStudentID, PrefixEmail, PrefixTeleHandle) ||
		am.Preamble() != "" {
		return nil, invalidFormat(command.AddStudentUsage)
	}

	moduleName, err := ParseModuleName(value(am, PrefixModuleName))
	if err != nil {
		return nil, err
	}
	name, err := ParseName(value(am, PrefixName))
	if err != nil {
		return nil, err
	}
	id, err := ParseStudentID(value(am, PrefixStudentID))
	if err != nil {
		return nil, err
	}
	email, err := ParseEmail(value(am, PrefixEmail))
	if err != nil {
		return nil, err
	}
	handle, err := ParseTeleHandle(value(am, PrefixTeleHandle))
	if err != nil {
		return nil, err
	}

	return command.AddStudent{
		Module:  moduleName,
		Student: student.New(name, id, email, handle),
	}, nil
}

func parseEditStudent(args string) (command.Command, error) {
	am := Tokenize(args, PrefixModuleName, PrefixStudentID, PrefixName, PrefixEmail, PrefixTeleHandle)
	if !am.ArePrefixesPresent(PrefixModuleName, PrefixStudentID) || am.Preamble() != "" {
		return nil, invalidFormat(command.EditStudentUsage)
	}

	moduleName, err := ParseModuleName(value(am, PrefixModuleName))
	if err != nil {
		return nil, err
	}
	id, err := ParseStudentID(value(am, PrefixStudentID))
	if err != nil {
		return nil, err
	}

	var desc command.EditStudentDescriptor
	if raw, ok := am.Value(PrefixName); ok {
		name, err := ParseName(raw)
		if err != nil {
			return nil, err
		}
		desc.Name = &name
	}
	if raw, ok := am.Value(PrefixEmail); ok {
		email, err := ParseEmail(raw)
		if err != nil {
			return nil, err
		}
		desc.Email = &email
	}
	if raw, ok := am.Value(PrefixTeleHandle); ok {
		handle, err := ParseTeleHandle(raw)
		if err != nil {
			return nil, err
		}
		desc.TeleHandle = &handle
	}
	if !desc.IsAnyFieldEdited() {
		return nil, &Error{Message: command.MessageNotEdited}
	}

	return command.EditStudent{Module: moduleName, ID: id, Descriptor: desc}, nil
}

func parseDeleteStudent(args string) (command.Command, error) {
	am := Tokenize(args, PrefixModuleName, PrefixStudentID)
	if !am.ArePrefixesPresent(PrefixModuleName, PrefixStudentID) || am.Preamble() != "" {
		return nil, invalidFormat(command.DeleteStudentUsage)
	}

	moduleName, err := ParseModuleName(value(am, PrefixModuleName))
	if err != nil {
		return nil, err
	}
	id, err := ParseStudentID(value(am, PrefixStudentID))
	if err != nil {
		return nil, err
	}
	return command.DeleteStudent{Module: moduleName, ID: id}, nil
}

// value returns the last value for a prefix already checked with ArePrefixesPresent.
func value(am ArgumentMultimap, p Prefix) string {
	v, _ := am.Value(p)
	return v
}
