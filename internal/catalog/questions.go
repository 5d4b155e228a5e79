package catalog

// quizQuestions is the static question bank. Only commands present here
// are eligible for quiz draws.
var quizQuestions = map[string][]QuizQuestion{
	"ls": {
		{
			Question: "What is the primary purpose of the `ls` command?",
			Options:  []string{"To list files and directories", "To create new files", "To show system storage", "To log into a server"},
			Answer:   "To list files and directories",
		},
		{
			Question: "How do you list files in a long format, showing details?",
			Options:  []string{"ls -l", "ls -d", "ls -long", "ls --details"},
			Answer:   "ls -l",
		},
		{
			Question: "Which option shows hidden files (dotfiles)?",
			Options:  []string{"ls -h", "ls -a", "ls -hidden", "ls -dots"},
			Answer:   "ls -a",
		},
	},
	"grep": {
		{
			Question: "What is `grep` used for?",
			Options:  []string{"To format text", "To search for patterns in text", "To create graphics", "To remove files"},
			Answer:   "To search for patterns in text",
		},
		{
			Question: "How do you search for \"error\" in `app.log` case-insensitively?",
			Options:  []string{"grep --no-case \"error\" app.log", "grep -i \"error\" app.log", "grep -c \"error\" app.log", "grep -s \"error\" app.log"},
			Answer:   "grep -i \"error\" app.log",
		},
		{
			Question: "How do you count the number of matching lines?",
			Options:  []string{"grep -n \"pattern\" file", "grep --count \"pattern\" file", "grep -c \"pattern\" file", "grep -l \"pattern\" file"},
			Answer:   "grep -c \"pattern\" file",
		},
	},
	"chmod": {
		{
			Question: "What does the `chmod` command do?",
			Options:  []string{"Changes file ownership", "Changes file permissions", "Creates a new file", "Checks for file modifications"},
			Answer:   "Changes file permissions",
		},
		{
			Question: "How do you make a script `run.sh` executable for everyone?",
			Options:  []string{"chmod +x run.sh", "chmod -x run.sh", "chmod r-- run.sh", "chmod 777 run.sh"},
			Answer:   "chmod +x run.sh",
		},
		{
			Question: "What does `chmod 600 private.key` do?",
			Options:  []string{"Owner: read/write; Others: none", "Everyone: read-only", "Owner: execute-only", "Owner: read-only; Group: read-only"},
			Answer:   "Owner: read/write; Others: none",
		},
	},
	"systemctl": {
		{
			Question: "What is `systemctl` used for?",
			Options:  []string{"To manage systemd services", "To control system volume", "To configure network devices", "To install software packages"},
			Answer:   "To manage systemd services",
		},
		{
			Question: "How do you check the status of the `nginx` service?",
			Options:  []string{"systemctl --status nginx", "systemctl get nginx", "systemctl status nginx", "systemctl view nginx"},
			Answer:   "systemctl status nginx",
		},
		{
			Question: "How do you enable a service to start on boot?",
			Options:  []string{"systemctl startup servicename", "systemctl enable servicename", "systemctl on servicename", "systemctl load servicename"},
			Answer:   "systemctl enable servicename",
		},
	},
	"ssh": {
		{
			Question: "What is the primary use of the `ssh` command?",
			Options:  []string{"To securely connect to a remote server", "To search for files", "To schedule system tasks", "To check storage health"},
			Answer:   "To securely connect to a remote server",
		},
		{
			Question: "How do you connect as `user` to `host.com` on port `2222`?",
			Options:  []string{"ssh user@host.com:2222", "ssh user@host.com --port 2222", "ssh -p 2222 user@host.com", "ssh connect user@host.com 2222"},
			Answer:   "ssh -p 2222 user@host.com",
		},
		{
			Question: "Which command generates a new SSH key pair?",
			Options:  []string{"ssh-key", "ssh-gen", "keygen", "ssh-keygen"},
			Answer:   "ssh-keygen",
		},
	},
	"pwd": {
		{
			Question: "What does `pwd` stand for?",
			Options:  []string{"Print Working Directory", "Pass-Word Directory", "Path of Working Directory", "Present Working Directory"},
			Answer:   "Print Working Directory",
		},
		{
			Question: "What is the output of `pwd`?",
			Options:  []string{"The relative path", "The user's home directory", "The absolute path of the current directory", "A list of directory contents"},
			Answer:   "The absolute path of the current directory",
		},
		{
			Question: "Is `pwd` a shell builtin or a separate executable?",
			Options:  []string{"Always a separate executable", "Always a shell builtin", "It can be both", "Neither, it is a kernel function"},
			Answer:   "It can be both",
		},
	},
	"cd": {
		{
			Question: "How do you navigate to your home directory?",
			Options:  []string{"cd /home", "cd", "cd --home", "cd root"},
			Answer:   "cd",
		},
		{
			Question: "How do you navigate to the previously visited directory?",
			Options:  []string{"cd ..", "cd last", "cd prev", "cd -"},
			Answer:   "cd -",
		},
		{
			Question: "How do you move up one level in the directory tree?",
			Options:  []string{"cd up", "cd ..", "cd ^", "cd /"},
			Answer:   "cd ..",
		},
	},
	"find": {
		{
			Question: "How do you find all files named `config.yml` in the current directory and its subdirectories?",
			Options:  []string{"find . -name config.yml", "find . --file config.yml", "search . config.yml", "grep config.yml ."},
			Answer:   "find . -name config.yml",
		},
		{
			Question: "Which option is used to find files based on their type, like directories?",
			Options:  []string{"-kind d", "-type d", "--dir", "-isDirectory"},
			Answer:   "-type d",
		},
		{
			Question: "How can you execute a command on each file found?",
			Options:  []string{"Using the --run option", "Using the -exec option", "Using the -do option", "Using the | pipe operator"},
			Answer:   "Using the -exec option",
		},
	},
	"ps": {
		{
			Question: "What is the `ps` command used for?",
			Options:  []string{"To show network packets", "To report a snapshot of current processes", "To pause a script", "To print a string"},
			Answer:   "To report a snapshot of current processes",
		},
		{
			Question: "How do you see all processes running on the system?",
			Options:  []string{"ps all", "ps -a", "ps aux", "ps --system"},
			Answer:   "ps aux",
		},
		{
			Question: "What is the PID?",
			Options:  []string{"Program ID", "Parent ID", "Process ID", "Priority ID"},
			Answer:   "Process ID",
		},
	},
	"kill": {
		{
			Question: "What is the purpose of the `kill` command?",
			Options:  []string{"To delete a file", "To stop the computer", "To send a signal to a process", "To clear the terminal"},
			Answer:   "To send a signal to a process",
		},
		{
			Question: "What is the default signal sent by `kill`?",
			Options:  []string{"SIGKILL (9)", "SIGHUP (1)", "SIGTERM (15)", "SIGSTOP (19)"},
			Answer:   "SIGTERM (15)",
		},
		{
			Question: "How do you forcefully terminate a process with PID 1234?",
			Options:  []string{"kill -f 1234", "kill -9 1234", "kill --force 1234", "terminate 1234"},
			Answer:   "kill -9 1234",
		},
	},
}
