package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tablero/internal/cli/styles"
	"github.com/thenoetrevino/tablero/internal/models"
)

// OutputFormatter handles three output modes: JSON, quiet, and human-readable
type OutputFormatter struct {
	JSON  bool
	Quiet bool

	Out    io.Writer // defaults to os.Stdout
	ErrOut io.Writer // defaults to os.Stderr
}

// NewFormatter builds a formatter from the --json and --quiet flags of cmd,
// writing to the command's output streams
func NewFormatter(cmd *cobra.Command) *OutputFormatter {
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")
	return &OutputFormatter{
		JSON:   jsonOutput,
		Quiet:  quietMode,
		Out:    cmd.OutOrStdout(),
		ErrOut: cmd.ErrOrStderr(),
	}
}

// Outcome pairs a mutation result with the verb shown in human output
type Outcome struct {
	Verb string // "created", "updated", "deleted"
	Data any
}

// GetID returns the ID of the wrapped record, or 0
func (o Outcome) GetID() int {
	if idGetter, ok := o.Data.(interface{ GetID() int }); ok {
		return idGetter.GetID()
	}
	return 0
}

// MarshalJSON encodes the wrapped record only
func (o Outcome) MarshalJSON() ([]byte, error) {
	return json.Marshal(o.Data)
}

func (f *OutputFormatter) out() io.Writer {
	if f.Out == nil {
		return os.Stdout
	}
	return f.Out
}

func (f *OutputFormatter) errOut() io.Writer {
	if f.ErrOut == nil {
		return os.Stderr
	}
	return f.ErrOut
}

// Success outputs successful operation result
func (f *OutputFormatter) Success(data any) error {
	if f.Quiet {
		// Extract ID if possible
		if idGetter, ok := data.(interface{ GetID() int }); ok {
			_, err := fmt.Fprintf(f.out(), "%d\n", idGetter.GetID())
			return err
		}
		if boards, ok := data.([]*models.Board); ok {
			for _, b := range boards {
				if _, err := fmt.Fprintf(f.out(), "%d\n", b.ID); err != nil {
					return err
				}
			}
			return nil
		}
	}

	if f.JSON {
		return json.NewEncoder(f.out()).Encode(map[string]any{
			"success": true,
			"data":    data,
		})
	}

	// Human-readable format
	return f.prettyPrint(data)
}

// Error outputs error information
func (f *OutputFormatter) Error(code string, message string) error {
	return f.ErrorWithSuggestion(code, message, "")
}

// ErrorWithSuggestion outputs error information with an optional suggestion
func (f *OutputFormatter) ErrorWithSuggestion(code string, message string, suggestion string) error {
	if f.JSON {
		errData := map[string]any{
			"code":    code,
			"message": message,
		}
		if suggestion != "" {
			errData["suggestion"] = suggestion
		}
		return json.NewEncoder(f.out()).Encode(map[string]any{
			"success": false,
			"error":   errData,
		})
	}

	// Human-readable error
	fmt.Fprintln(f.errOut(), styles.ErrorStyle.Render("❌ Error: "+message))
	if suggestion != "" {
		fmt.Fprintln(f.errOut(), styles.WarningStyle.Render("💡 Suggestion: "+suggestion))
	}
	return nil
}

// Fail reports err in the current output mode and returns it with its exit code attached
func (f *OutputFormatter) Fail(err error) error {
	code := ExitCode(err)

	var exitErr *ExitCodeError
	if errors.As(err, &exitErr) && exitErr.Reported {
		return err
	}

	if fmtErr := f.ErrorWithSuggestion(errorCode(code), err.Error(), suggestionFor(code)); fmtErr != nil {
		fmt.Fprintf(f.errOut(), "Error formatting error message: %v\n", fmtErr)
	}
	return &ExitCodeError{Code: code, Err: err, Reported: true}
}

func suggestionFor(code int) string {
	switch code {
	case ExitNotFound:
		return "Use 'tablero board list' to see available boards"
	case ExitValidation:
		return "Use 'tablero board show <id>' to see the groups of a board"
	case ExitDataErr:
		return "--data takes a JSON object and --set takes key=value"
	default:
		return ""
	}
}

// prettyPrint formats data for human-readable output
func (f *OutputFormatter) prettyPrint(data any) error {
	w := f.out()

	switch v := data.(type) {
	case []*models.Board:
		printBoardList(w, v)
	case *models.Board:
		printBoard(w, v)
	case *models.Item:
		printItem(w, v)
	case Outcome:
		fmt.Fprintln(w, styles.SuccessStyle.Render(fmt.Sprintf("%s %s %d", describe(v.Data), v.Verb, v.GetID())))
		switch rec := v.Data.(type) {
		case *models.Board:
			printBoard(w, rec)
		case *models.Item:
			printItem(w, rec)
		}
	default:
		fmt.Fprintf(w, "%+v\n", data)
	}
	return nil
}

func describe(data any) string {
	switch data.(type) {
	case *models.Board:
		return "Board"
	case *models.Item:
		return "Item"
	default:
		return "Record"
	}
}

func printBoardList(w io.Writer, boards []*models.Board) {
	if len(boards) == 0 {
		fmt.Fprintln(w, "No boards found")
		return
	}

	fmt.Fprintf(w, "Found %d boards:\n\n", len(boards))
	for _, b := range boards {
		fmt.Fprintf(w, "  [%d] %s %s\n",
			b.ID,
			styles.TitleStyle.Render(titleOr(b.Title(), "(untitled)")),
			styles.SubtitleStyle.Render(fmt.Sprintf("%d groups, %d items", len(b.Groups), b.ItemCount())))
	}
}

func printBoard(w io.Writer, b *models.Board) {
	var sb strings.Builder

	sb.WriteString(styles.TitleStyle.Render(fmt.Sprintf("[%d] %s", b.ID, titleOr(b.Title(), "(untitled)"))))
	sb.WriteString("\n")
	if desc := b.Description(); desc != "" {
		sb.WriteString(styles.ValueStyle.Render(desc))
		sb.WriteString("\n")
	}
	if !b.UpdatedAt.IsZero() {
		sb.WriteString(styles.LabelStyle.Render("Updated: "))
		sb.WriteString(styles.ValueStyle.Render(b.UpdatedAt.Format("2006-01-02 15:04:05")))
		sb.WriteString("\n")
	}

	for _, g := range b.Groups {
		sb.WriteString(styles.SectionStyle.Render(fmt.Sprintf("%s (%d) [group %d]", titleOr(g.Title(), "(untitled)"), len(g.Items), g.ID)))
		sb.WriteString("\n")
		for _, it := range g.Items {
			sb.WriteString(fmt.Sprintf("  [%d] %s\n", it.ID, titleOr(it.Title(), "(untitled)")))
		}
	}

	fmt.Fprintln(w, styles.CardStyle.Render(strings.TrimRight(sb.String(), "\n")))
}

func printItem(w io.Writer, it *models.Item) {
	fmt.Fprintf(w, "  [%d] %s %s\n",
		it.ID,
		styles.TitleStyle.Render(titleOr(it.Title(), "(untitled)")),
		styles.SubtitleStyle.Render(fmt.Sprintf("group %d", it.GroupID)))
}

func titleOr(title, fallback string) string {
	if title == "" {
		return fallback
	}
	return title
}
