package config

// DefaultConfigTOML is the commented configuration template written by
// `csim init`. Every setting is commented out and shows its default, so a
// freshly generated file changes nothing.
const DefaultConfigTOML = `# csim configuration file
# Structural similarity screening for C-like source submissions.
# All settings are optional; uncomment and edit the ones you need.

[compare]
# File extensions accepted as comparable source input.
# extensions = [".c", ".h", ".txt"]

# Largest input file in bytes. 0 means no limit.
# max_input_bytes = 0

# Fail the comparison (exit code 2) when similarity reaches this ratio.
# Useful as a CI gate. Negative disables the gate.
# fail_above = -1.0

[thresholds]
# Verdict band lower bounds, each in [0.0, 1.0], strictly decreasing.
# Scores >= high are flagged as highly similar (possible plagiarism).
# high = 0.90
# moderate = 0.60
# low = 0.30

[output]
# Report format: text, json, yaml, csv
# format = "text"

# Include per-input token and sequence statistics in text reports.
# show_details = false

# Directory for report files written with --output. Empty means the
# current directory.
# directory = ""

[generator]
# Settings for 'csim gen', the synthetic stress fixture generator.
# functions = 5000
# main_calls = 100
# output_path = "stress_test.c"
# seed = 1
`
