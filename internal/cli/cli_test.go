package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paystruct/salary-breakdown/internal/domain"
	"github.com/paystruct/salary-breakdown/internal/output"
)

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cmd := NewRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

// exampleDir writes the example structure and assignment into a temp dir.
func exampleDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	out, _, err := run(t, "example", "--dir", dir)
	require.NoError(t, err)
	assert.Contains(t, out, filepath.Join(dir, "structure.yaml"))
	return dir
}

const rosterYAML = `structure_id: standard-2025
effective: "2025-07"
assignments:
  - employee_id: E-1
    gross_salary: 1200000
  - employee_id: E-2
    gross_salary: 600000
    component_toggles:
      conveyance: false
  - employee_id: E-3
    gross_salary: 30000
`

func TestComputeAssignment(t *testing.T) {
	dir := exampleDir(t)
	out, _, err := run(t, "compute",
		"--structure", filepath.Join(dir, "structure.yaml"),
		"--assignment", filepath.Join(dir, "assignment.yaml"))
	require.NoError(t, err)

	assert.Contains(t, out, "SALARY BREAKDOWN: Standard Compensation 2025 (standard-2025)")
	assert.Contains(t, out, "Employee: EMP-001  Effective: 2025-04")
	assert.Contains(t, out, "INR 1176000.00")
	assert.NotContains(t, out, "INVALID")
}

func TestComputeMonthlyJSON(t *testing.T) {
	dir := exampleDir(t)
	out, _, err := run(t, "compute", "-s", filepath.Join(dir, "structure.yaml"),
		"-a", filepath.Join(dir, "assignment.yaml"), "--format", "json", "--monthly")
	require.NoError(t, err)

	var report output.Report
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.True(t, report.Monthly)
	require.Len(t, report.Entries, 1)
	assert.Equal(t, "98000.00", report.Entries[0].Breakdown.NetPay.StringFixed(2))
}

func TestComputeRosterWithInvalidEntry(t *testing.T) {
	dir := exampleDir(t)
	roster := filepath.Join(dir, "roster.yaml")
	require.NoError(t, os.WriteFile(roster, []byte(rosterYAML), 0644))
	outFile := filepath.Join(dir, "roster.csv")

	_, _, err := run(t, "compute", "-s", filepath.Join(dir, "structure.yaml"), "-r", roster,
		"-f", "csv", "-o", outFile)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidBreakdown)
	assert.Contains(t, err.Error(), "1 of 3")

	data, err := os.ReadFile(outFile)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	// header + 3 entries * (4 earnings + 2 deductions + 3 totals)
	assert.Len(t, lines, 1+3*9)
	assert.True(t, strings.HasPrefix(lines[1], "E-1,2025-07,"))
}

func TestComputeErrors(t *testing.T) {
	dir := exampleDir(t)
	structure := filepath.Join(dir, "structure.yaml")
	assignment := filepath.Join(dir, "assignment.yaml")

	_, _, err := run(t, "compute", "-s", structure, "-a", assignment, "-f", "yaml")
	assert.ErrorIs(t, err, output.ErrUnsupportedFormat)

	_, _, err = run(t, "compute", "-s", structure)
	assert.Error(t, err, "assignment or roster required")

	_, _, err = run(t, "compute", "-s", structure, "-a", assignment, "-r", assignment)
	assert.Error(t, err, "assignment and roster are exclusive")

	_, _, err = run(t, "compute", "-s", filepath.Join(dir, "missing.yaml"), "-a", assignment)
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, _, err = run(t, "compute", "-s", structure, "-a", assignment, "--log-level", "loud")
	assert.Error(t, err)
}

func TestPayloadCommand(t *testing.T) {
	dir := exampleDir(t)
	out, _, err := run(t, "payload", "-s", filepath.Join(dir, "structure.yaml"), "-a", filepath.Join(dir, "assignment.yaml"))
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	assert.Equal(t, "standard-2025", decoded["structure_id"])
	assert.Equal(t, float64(1200000), decoded["gross_salary"])
	assert.Equal(t, float64(4), decoded["effective_month"])
	assert.Len(t, decoded["idempotency_key"], 36)
	toggles := decoded["component_toggles"].(map[string]any)
	assert.Equal(t, false, toggles["conveyance"])
	assert.Equal(t, true, toggles["basic"])
	values := decoded["component_values"].(map[string]any)
	assert.Equal(t, float64(25), values["hra"])
	assert.NotContains(t, values, "special")
}

func TestPayloadCommandRefusesInvalid(t *testing.T) {
	dir := exampleDir(t)
	asg := filepath.Join(dir, "low.yaml")
	require.NoError(t, os.WriteFile(asg, []byte("structure_id: standard-2025\ngross_salary: 10000\n"), 0644))

	_, _, err := run(t, "payload", "-s", filepath.Join(dir, "structure.yaml"), "-a", asg)
	assert.ErrorIs(t, err, domain.ErrInvalidBreakdown)
}

func TestValidateCommand(t *testing.T) {
	dir := exampleDir(t)
	roster := filepath.Join(dir, "roster.yaml")
	require.NoError(t, os.WriteFile(roster, []byte(rosterYAML), 0644))

	out, _, err := run(t, "validate", "-s", filepath.Join(dir, "structure.yaml"),
		"-a", filepath.Join(dir, "assignment.yaml"), "-r", roster)
	require.NoError(t, err)
	assert.Contains(t, out, "structure standard-2025 OK: 4 earnings, 2 deductions, balancer special")
	assert.Contains(t, out, "assignment EMP-001 OK")
	assert.Contains(t, out, "minimum valid gross salary: 0.01")
	assert.Contains(t, out, "roster OK: 3 assignments")

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("id: x\nname: X\ncomponents:\n  - id: a\n    name: A\n    kind: bonus\n"), 0644))
	_, _, err = run(t, "validate", "-s", bad)
	assert.ErrorIs(t, err, domain.ErrInvalidComponent)
}

func TestExampleRefusesOverwrite(t *testing.T) {
	dir := exampleDir(t)
	_, _, err := run(t, "example", "--dir", dir)
	assert.ErrorContains(t, err, "already exists")

	_, _, err = run(t, "example", "--dir", dir, "--force")
	assert.NoError(t, err)
}

func TestFormatsCommand(t *testing.T) {
	out, _, err := run(t, "formats")
	require.NoError(t, err)
	assert.Contains(t, out, "console")
	assert.Contains(t, out, "xlsx     (aliases: excel, xls)")
	assert.Contains(t, out, "pdf      (aliases: payslip)")
}

func TestSettings(t *testing.T) {
	s, err := LoadSettings("")
	require.NoError(t, err)
	assert.Equal(t, "warn", s.Log.Level)
	assert.Equal(t, "console", s.Output.Format)
	assert.Equal(t, 0, s.Roster.Workers)

	t.Setenv("PAYSTRUCT_OUTPUT_FORMAT", "json")
	t.Setenv("PAYSTRUCT_ROSTER_WORKERS", "3")
	s, err = LoadSettings("")
	require.NoError(t, err)
	assert.Equal(t, "json", s.Output.Format)
	assert.Equal(t, 3, s.Roster.Workers)

	path := filepath.Join(t.TempDir(), "paystruct.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log:\n  level: debug\noutput:\n  currency: EUR\n"), 0644))
	s, err = LoadSettings(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", s.Log.Level)
	assert.Equal(t, "EUR", s.Output.Currency)

	_, err = LoadSettings(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestSettingsDriveCompute(t *testing.T) {
	dir := exampleDir(t)
	settings := filepath.Join(dir, "settings.yaml")
	require.NoError(t, os.WriteFile(settings, []byte("output:\n  format: csv\n  monthly: true\n"), 0644))

	out, _, err := run(t, "--config", settings, "compute",
		"-s", filepath.Join(dir, "structure.yaml"), "-a", filepath.Join(dir, "assignment.yaml"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "EmployeeID,"))
	assert.Contains(t, out, "total,net_pay,Net Pay,98000.00")
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	l, err := NewLogger(&buf, "info", "json")
	require.NoError(t, err)
	slogLogger{l: l}.Infof("computed %d", 3)
	slogLogger{l: l}.Debugf("hidden")
	assert.Contains(t, buf.String(), `"msg":"computed 3"`)
	assert.NotContains(t, buf.String(), "hidden")

	_, err = NewLogger(&buf, "verbose", "text")
	assert.Error(t, err)
	_, err = NewLogger(&buf, "info", "xml")
	assert.Error(t, err)
}

func TestWarningsLogged(t *testing.T) {
	dir := exampleDir(t)
	asg := filepath.Join(dir, "low.yaml")
	require.NoError(t, os.WriteFile(asg, []byte("employee_id: LOW\nstructure_id: standard-2025\ngross_salary: 10000\n"), 0644))

	out, stderr, err := run(t, "compute", "-s", filepath.Join(dir, "structure.yaml"), "-a", asg)
	assert.ErrorIs(t, err, domain.ErrInvalidBreakdown)
	assert.Contains(t, out, "INVALID: Special Allowance cannot be negative")
	assert.Contains(t, stderr, "level=WARN")
	assert.Contains(t, stderr, "employee=LOW")
}
