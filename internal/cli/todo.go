package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sadopc/aura/internal/app"
)

func addTodo(topLevel *cobra.Command, ro *rootOptions) {
	cmd := &cobra.Command{
		Use:     "todo",
		Aliases: []string{"todos"},
		Short:   "Manage the todo list.",
		Example: `
aura todo add buy milk
aura todo ls
aura todo done 1
aura todo rm 1
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "add <text>",
		Short: "Add a todo.",
		Args: func(_ *cobra.Command, args []string) error {
			if strings.TrimSpace(strings.Join(args, " ")) == "" {
				return errors.New("requires the todo text")
			}
			return nil
		},
		RunE: withTodos(ro, func(cmd *cobra.Command, t *app.Todos, args []string) error {
			t.Add(strings.Join(args, " "))
			return printTodos(cmd, t)
		}),
	})

	cmd.AddCommand(&cobra.Command{
		Use:     "ls",
		Aliases: []string{"list"},
		Short:   "List todos.",
		Args:    cobra.NoArgs,
		RunE: withTodos(ro, func(cmd *cobra.Command, t *app.Todos, _ []string) error {
			return printTodos(cmd, t)
		}),
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "done <number>",
		Short: "Toggle a todo between open and done.",
		Args:  cobra.ExactArgs(1),
		RunE: withTodos(ro, func(cmd *cobra.Command, t *app.Todos, args []string) error {
			i, err := todoIndex(args[0])
			if err != nil {
				return err
			}
			if !t.Toggle(i) {
				return fmt.Errorf("no todo number %s", args[0])
			}
			return printTodos(cmd, t)
		}),
	})

	cmd.AddCommand(&cobra.Command{
		Use:     "rm <number>",
		Aliases: []string{"delete"},
		Short:   "Delete a todo.",
		Args:    cobra.ExactArgs(1),
		RunE: withTodos(ro, func(cmd *cobra.Command, t *app.Todos, args []string) error {
			i, err := todoIndex(args[0])
			if err != nil {
				return err
			}
			if !t.Delete(i) {
				return fmt.Errorf("no todo number %s", args[0])
			}
			return printTodos(cmd, t)
		}),
	})

	topLevel.AddCommand(cmd)
}

type todoFunc func(cmd *cobra.Command, t *app.Todos, args []string) error

func withTodos(ro *rootOptions, fn todoFunc) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		sess, err := ro.open(cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		defer sess.Close()
		return fn(cmd, app.NewTodos(sess.store.Todos), args)
	}
}

// todoIndex converts the 1-based number shown by ls to an index.
func todoIndex(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return 0, fmt.Errorf("invalid todo number %q", s)
	}
	return n - 1, nil
}

func printTodos(cmd *cobra.Command, t *app.Todos) error {
	v := t.TodoList()
	out := cmd.OutOrStdout()
	if v.Placeholder != "" {
		fmt.Fprintln(out, v.Placeholder)
		return nil
	}
	for _, row := range v.Rows {
		mark := "[ ]"
		if row.Done {
			mark = "[x]"
		}
		fmt.Fprintf(out, "%2d. %s %s\n", row.Index+1, mark, row.Text)
	}
	fmt.Fprintf(out, "%d open\n", v.Open)
	return nil
}
