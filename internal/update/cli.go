package update

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/sandeepkv93/tasklist/internal/commands"
	"github.com/sandeepkv93/tasklist/internal/model"
	"github.com/sandeepkv93/tasklist/internal/store"
	"github.com/sandeepkv93/tasklist/internal/views"
)

// RunCommand executes one command outside the TUI and writes the feedback
// text to out. Deletes happen at once since there is nothing to animate.
func RunCommand(ctx context.Context, st *store.Store, cmd commands.Command, out io.Writer) error {
	_, err := commands.Execute(cmd, commands.Handlers{
		Add: func(a commands.AddArgs) (commands.Result, error) {
			task, err := st.Create(ctx, a.Text)
			if model.IsValidationError(err) {
				return commands.Result{}, errors.New(msgEnterTask)
			}
			if err != nil {
				return commands.Result{}, err
			}
			fmt.Fprintf(out, "%s (#%d)\n", msgTaskAdded, task.ID)
			return commands.Result{Message: msgTaskAdded}, nil
		},
		Toggle: func(a commands.TaskArgs) (commands.Result, error) {
			task, err := st.Toggle(ctx, a.ID)
			if err != nil {
				return commands.Result{}, fmt.Errorf("task %d: %w", a.ID, err)
			}
			msg := msgTaskIncomplete
			if task.Completed {
				msg = msgTaskCompleted
			}
			fmt.Fprintln(out, msg)
			return commands.Result{Message: msg}, nil
		},
		Edit: func(commands.TaskArgs) (commands.Result, error) {
			return commands.Result{}, &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: "edit is interactive; use rename <id> <text>"}
		},
		Rename: func(a commands.RenameArgs) (commands.Result, error) {
			_, err := st.Rename(ctx, a.ID, a.Text)
			if model.IsValidationError(err) {
				return commands.Result{}, errors.New(msgEnterTaskName)
			}
			if err != nil {
				return commands.Result{}, fmt.Errorf("task %d: %w", a.ID, err)
			}
			fmt.Fprintln(out, msgTaskUpdated)
			return commands.Result{Message: msgTaskUpdated}, nil
		},
		Delete: func(a commands.TaskArgs) (commands.Result, error) {
			if err := st.Delete(ctx, a.ID); err != nil {
				return commands.Result{}, fmt.Errorf("task %d: %w", a.ID, err)
			}
			fmt.Fprintln(out, msgTaskDeleted)
			return commands.Result{Message: msgTaskDeleted}, nil
		},
		Filter: func(a commands.FilterArgs) (commands.Result, error) {
			return listTasks(st, a.Filter, out)
		},
		List: func(a commands.FilterArgs) (commands.Result, error) {
			return listTasks(st, a.Filter, out)
		},
	})
	return err
}

func listTasks(st *store.Store, f model.Filter, out io.Writer) (commands.Result, error) {
	all := st.All()
	count := f.CountText(model.Summarize(all))
	md := views.TaskMarkdown(f.Label()+" tasks", f.Apply(all), count)
	fmt.Fprintln(out, views.RenderMarkdown(md))
	return commands.Result{Message: count}, nil
}
