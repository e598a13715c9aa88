package cli

import (
	"fmt"
	"io"
	"strings"
)

// GenerateCompletion writes the completion script for shell ("bash" or
// "fish"), offering algorithms for -algo.
func GenerateCompletion(out io.Writer, shell string, algorithms []string) error {
	algoList := strings.Join(append(append([]string(nil), algorithms...), "all"), " ")
	switch shell {
	case "bash":
		_, err := fmt.Fprintf(out, bashCompletion, algoList)
		return err
	case "fish":
		_, err := fmt.Fprintf(out, fishCompletion, algoList)
		return err
	default:
		return fmt.Errorf("unsupported shell: %s (accepted values: bash, fish)", shell)
	}
}

const bashCompletion = `# Bash completion script for decmul
# Add this to your ~/.bashrc or ~/.bash_completion

_decmul_completions() {
    local cur prev opts algorithms
    COMPREPLY=()
    cur="${COMP_WORDS[COMP_CWORD]}"
    prev="${COMP_WORDS[COMP_CWORD-1]}"

    opts="-h --help --version -a -b -algo -inverter -timeout -v -d -details -json -q -quiet -o -output -no-color -server -port -max-digits -probe -probe-profile -probe-limit -probe-fft-limit -completion"
    algorithms="%s"

    case "${prev}" in
        -algo|--algo)
            COMPREPLY=( $(compgen -W "${algorithms}" -- "${cur}") )
            return 0
            ;;
        -inverter|--inverter)
            COMPREPLY=( $(compgen -W "exact lu" -- "${cur}") )
            return 0
            ;;
        -completion|--completion)
            COMPREPLY=( $(compgen -W "bash fish" -- "${cur}") )
            return 0
            ;;
        -o|-output|--output|-probe-profile|--probe-profile)
            COMPREPLY=( $(compgen -f -- "${cur}") )
            return 0
            ;;
        -timeout|--timeout)
            COMPREPLY=( $(compgen -W "10s 30s 1m 5m" -- "${cur}") )
            return 0
            ;;
        -a|-b|-port|-max-digits|-probe-limit|-probe-fft-limit)
            return 0
            ;;
    esac

    if [[ "${cur}" == -* ]]; then
        COMPREPLY=( $(compgen -W "${opts}" -- "${cur}") )
        return 0
    fi
}

complete -F _decmul_completions decmul
`

const fishCompletion = `# Fish completion script for decmul
# Save as ~/.config/fish/completions/decmul.fish

complete -c decmul -o a -d 'First operand' -x
complete -c decmul -o b -d 'Second operand' -x
complete -c decmul -o algo -d 'Strategy to use' -xa '%s'
complete -c decmul -o inverter -d 'Toom-Cook-3 matrix inverter' -xa 'exact lu'
complete -c decmul -o timeout -d 'Maximum execution time' -xa '10s 30s 1m 5m'
complete -c decmul -o v -d 'Display the full product'
complete -c decmul -o d -o details -d 'Show digit counts and timing'

# Output
complete -c decmul -o json -d 'Output in JSON format'
complete -c decmul -o o -o output -d 'Output file path' -rF
complete -c decmul -o q -o quiet -d 'Print only the product'
complete -c decmul -o no-color -d 'Disable colored output'

# Server
complete -c decmul -o server -d 'Start HTTP server mode'
complete -c decmul -o port -d 'Server port' -x
complete -c decmul -o max-digits -d 'Maximum digits per operand' -x

# Precision probe
complete -c decmul -o probe -d 'Measure precision bounds'
complete -c decmul -o probe-profile -d 'Precision profile file' -rF
complete -c decmul -o probe-limit -d 'Longest Toom-Cook-3 operand probed' -x
complete -c decmul -o probe-fft-limit -d 'Longest FFT operand probed' -x

complete -c decmul -o completion -d 'Generate completion script' -xa 'bash fish'
`
