package tutorial

import "fmt"

const systemPrompt = `You are an expert on Linux command-line tools. Your task is to provide a clear, concise, and accurate tutorial for a given command. The output must be in JSON format matching the provided schema.`

func buildUserMessage(command string) string {
	return fmt.Sprintf("Provide a tutorial for the Linux command: `%s`.", command)
}
