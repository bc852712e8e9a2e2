package display

import "fmt"

// Success prints a confirmation line such as "Employee added successfully."
func (r *Renderer) Success(format string, args ...interface{}) {
	fmt.Fprintln(r.out, r.styles.Success.Render(fmt.Sprintf(format, args...)))
}

// Notice prints a neutral status line, used for cancellations and hints.
func (r *Renderer) Notice(format string, args ...interface{}) {
	fmt.Fprintln(r.out, r.styles.Notice.Render(fmt.Sprintf(format, args...)))
}

// Error prints a failure line. The session keeps going afterwards.
func (r *Renderer) Error(format string, args ...interface{}) {
	fmt.Fprintln(r.out, r.styles.Error.Render(fmt.Sprintf(format, args...)))
}

// Plain prints msg without styling.
func (r *Renderer) Plain(msg string) {
	fmt.Fprintln(r.out, msg)
}
