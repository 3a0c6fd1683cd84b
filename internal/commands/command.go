package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/sandeepkv93/tasklist/internal/model"
)

type Type string

const (
	TypeAdd    Type = "add"
	TypeToggle Type = "toggle"
	TypeEdit   Type = "edit"
	TypeRename Type = "rename"
	TypeDelete Type = "delete"
	TypeFilter Type = "filter"
	TypeList   Type = "list"
)

type ErrorCode string

const (
	ErrCodeEmptyInput      ErrorCode = "empty_input"
	ErrCodeUnknownCommand  ErrorCode = "unknown_command"
	ErrCodeInvalidArgument ErrorCode = "invalid_argument"
	ErrCodeHandlerMissing  ErrorCode = "handler_missing"
)

type CommandError struct {
	Code    ErrorCode
	Message string
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// AddArgs carries the raw input; trimming and the empty check belong to the
// store so every entry point reports the same validation error.
type AddArgs struct {
	Text string
}

type TaskArgs struct {
	ID int64
}

type RenameArgs struct {
	ID   int64
	Text string
}

type FilterArgs struct {
	Filter model.Filter
}

type Command struct {
	Type   Type
	Raw    string
	Add    *AddArgs
	Toggle *TaskArgs
	Edit   *TaskArgs
	Rename *RenameArgs
	Delete *TaskArgs
	Filter *FilterArgs
	List   *FilterArgs
}

func Add(text string) Command {
	return Command{Type: TypeAdd, Add: &AddArgs{Text: text}}
}

func Toggle(id int64) Command {
	return Command{Type: TypeToggle, Toggle: &TaskArgs{ID: id}}
}

func Edit(id int64) Command {
	return Command{Type: TypeEdit, Edit: &TaskArgs{ID: id}}
}

func Rename(id int64, text string) Command {
	return Command{Type: TypeRename, Rename: &RenameArgs{ID: id, Text: text}}
}

func Delete(id int64) Command {
	return Command{Type: TypeDelete, Delete: &TaskArgs{ID: id}}
}

func SetFilter(f model.Filter) Command {
	return Command{Type: TypeFilter, Filter: &FilterArgs{Filter: f}}
}

func Parse(input string) (Command, error) {
	raw := strings.TrimSpace(input)
	if raw == "" {
		return Command{}, &CommandError{Code: ErrCodeEmptyInput, Message: "command is empty"}
	}
	if strings.HasPrefix(raw, "/") {
		raw = strings.TrimSpace(strings.TrimPrefix(raw, "/"))
	}
	if raw == "" {
		return Command{}, &CommandError{Code: ErrCodeEmptyInput, Message: "command is empty"}
	}

	parts := strings.Fields(raw)
	head := strings.ToLower(parts[0])
	args := parts[1:]

	var (
		cmd Command
		err error
	)
	switch Type(head) {
	case TypeAdd:
		cmd = Add(strings.Join(args, " "))
	case TypeToggle, "done":
		cmd, err = parseTaskCommand(TypeToggle, args)
	case TypeEdit:
		cmd, err = parseTaskCommand(TypeEdit, args)
	case TypeDelete, "rm":
		cmd, err = parseTaskCommand(TypeDelete, args)
	case TypeRename:
		cmd, err = parseRename(args)
	case TypeFilter, "show":
		cmd, err = parseFilter(TypeFilter, args)
	case TypeList, "ls":
		cmd, err = parseFilter(TypeList, args)
	default:
		return Command{}, &CommandError{Code: ErrCodeUnknownCommand, Message: fmt.Sprintf("unsupported command: %s", head)}
	}
	if err != nil {
		return Command{}, err
	}
	cmd.Raw = input
	return cmd, nil
}

func parseTaskCommand(typ Type, args []string) (Command, error) {
	if len(args) != 1 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("%s requires a task id", typ)}
	}
	id, err := parseID(args[0])
	if err != nil {
		return Command{}, err
	}
	switch typ {
	case TypeToggle:
		return Toggle(id), nil
	case TypeEdit:
		return Edit(id), nil
	default:
		return Delete(id), nil
	}
}

func parseRename(args []string) (Command, error) {
	if len(args) == 0 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "rename requires a task id and text"}
	}
	id, err := parseID(args[0])
	if err != nil {
		return Command{}, err
	}
	return Rename(id, strings.Join(args[1:], " ")), nil
}

func parseFilter(typ Type, args []string) (Command, error) {
	f := model.FilterAll
	if len(args) > 1 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("%s takes at most one filter", typ)}
	}
	if len(args) == 1 {
		parsed, err := model.ParseFilter(args[0])
		if err != nil {
			return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("unknown filter %q (want all, pending or completed)", args[0])}
		}
		f = parsed
	} else if typ == TypeFilter {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "filter requires all, pending or completed"}
	}
	if typ == TypeList {
		return Command{Type: TypeList, List: &FilterArgs{Filter: f}}, nil
	}
	return SetFilter(f), nil
}

func parseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimPrefix(raw, "#"), 10, 64)
	if err != nil || id <= 0 {
		return 0, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("invalid task id: %s", raw)}
	}
	return id, nil
}
