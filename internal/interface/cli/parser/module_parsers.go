package parser

import (
	"strings"

	"github.com/tabuddy/tabuddy/internal/application/command"
	"github.com/tabuddy/tabuddy/internal/domain/module"
)

func parseAddModule(args string) (command.Command, error) {
	am := Tokenize(args, PrefixModuleName)
	if !am.ArePrefixesPresent(PrefixModuleName) || am.Preamble() != "" {
		return nil, invalidFormat(command.AddModuleUsage)
	}
	raw, _ := am.Value(PrefixModuleName)
	name, err := ParseModuleName(raw)
	if err != nil {
		return nil, err
	}
	return command.AddModule{Module: module.New(name)}, nil
}

func parseEditModule(args string) (command.Command, error) {
	am := Tokenize(args, PrefixModuleName)
	if !am.ArePrefixesPresent(PrefixModuleName) {
		return nil, invalidFormat(command.EditModuleUsage)
	}
	index, err := ParseIndex(am.Preamble())
	if err != nil {
		return nil, invalidFormat(command.EditModuleUsage)
	}
	raw, _ := am.Value(PrefixModuleName)
	name, err := ParseModuleName(raw)
	if err != nil {
		return nil, err
	}
	return command.EditModule{Index: index, Name: name}, nil
}

func parseDeleteModule(args string) (command.Command, error) {
	index, err := ParseIndex(args)
	if err != nil {
		return nil, invalidFormat(command.DeleteModuleUsage)
	}
	return command.DeleteModule{Index: index}, nil
}

func parseFind(args string) (command.Command, error) {
	keywords := strings.Fields(args)
	if len(keywords) == 0 {
		return nil, invalidFormat(command.FindUsage)
	}
	return command.Find{Predicate: module.NameContainsKeywords{Keywords: keywords}}, nil
}
