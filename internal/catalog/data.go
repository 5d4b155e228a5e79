package catalog

// tierCommands lists every command in the catalog, grouped by tier.
// Order within each tier is the display order.
var tierCommands = map[Tier][]string{
	TierBeginner: {
		"pwd", "ls", "cd", "mkdir", "rmdir", "touch", "cp", "mv", "rm", "cat",
		"echo", "man", "clear", "history", "whoami", "date", "cal", "uname",
		"head", "tail", "less", "file", "wc", "sort", "uniq", "which", "alias",
		"unalias", "exit", "uptime",
	},
	TierIntermediate: {
		"find", "grep", "locate", "df", "du", "top", "ps", "kill", "killall",
		"chmod", "chown", "tar", "unzip", "scp", "wget", "curl", "nano", "vi",
		"env", "export", "ping", "traceroute", "ifconfig", "ip", "mount",
		"umount", "free", "hostname", "hostnamectl",
	},
	TierAdvanced: {
		"netstat", "ss", "iptables", "ufw", "nmap", "htop", "vmstat", "lsof",
		"rsync", "awk", "sed", "cron", "at", "journalctl", "tcpdump", "strace",
		"nc", "dig", "whois", "iptables-save", "systemctl", "service", "dmesg",
		"lsblk", "blkid", "fdisk", "parted", "sar", "iostat", "ethtool",
	},
	TierExpert: {
		"strings", "xargs", "tee", "yes", "watch", "tree", "basename",
		"dirname", "split", "join", "cut", "paste", "cmp", "diff", "comm",
		"md5sum", "sha256sum", "base64", "hexdump", "od", "lshw", "lscpu",
		"lsusb", "lspci", "nmcli", "ssh", "ssh-keygen", "ssh-copy-id", "zip",
		"gzip", "gunzip", "bzip2", "bunzip2", "xz", "unxz", "stat", "time",
		"fg", "bg", "jobs", "disown", "nohup", "screen", "tmux", "dd", "mkfs",
		"fsck",
	},
}

// tutorials holds the static tutorial content, ported in full from
// the original catalog. Unknown or stale command IDs still fall back
// to AI generation at view time.
var tutorials = map[string]Tutorial{
	// Beginner
	"pwd": {
		CommandName: "pwd",
		Summary:     "Print name of current/working directory.",
		Description: "The `pwd` command prints the full filename of the current working directory.",
		Examples: []Example{
			{Command: "pwd", Explanation: "Displays the path of the current directory."},
		},
	},
	"ls": {
		CommandName: "ls",
		Summary:     "List directory contents.",
		Description: "The `ls` command is used to list files and directories. By default, it lists the contents of the current directory. It has many options to control its output.",
		Examples: []Example{
			{Command: "ls", Explanation: "List files and directories in the current working directory."},
			{Command: "ls -l", Explanation: "List in long format, showing permissions, ownership, size, and modification date."},
			{Command: "ls -a", Explanation: "List all entries, including hidden files starting with a \".\""},
			{Command: "ls -lh", Explanation: "List in long format with human-readable file sizes (e.g., KB, MB)."},
		},
	},
	"cd": {
		CommandName: "cd",
		Summary:     "Change the shell working directory.",
		Description: "The `cd` command is used to change the current directory in the shell.",
		Examples: []Example{
			{Command: "cd /home/user/documents", Explanation: "Change directory to `/home/user/documents`."},
			{Command: "cd ..", Explanation: "Move up one directory level."},
			{Command: "cd ~", Explanation: "Go to the home directory."},
			{Command: "cd -", Explanation: "Go to the previous directory."},
		},
	},
	"mkdir": {
		CommandName: "mkdir",
		Summary:     "Make directories.",
		Description: "The `mkdir` command creates a new directory.",
		Examples: []Example{
			{Command: "mkdir new_folder", Explanation: "Creates a directory named `new_folder`."},
			{Command: "mkdir -p project/src/components", Explanation: "Creates parent directories as needed."},
		},
	},
	"rmdir": {
		CommandName: "rmdir",
		Summary:     "Remove empty directories.",
		Description: "The `rmdir` command is used to remove empty directories. It will fail if the directory is not empty.",
		Examples: []Example{
			{Command: "rmdir old_folder", Explanation: "Removes the `old_folder` directory if it is empty."},
			{Command: "rmdir -p project/src", Explanation: "Removes `src` and its parent `project` if they become empty."},
		},
	},
	"touch": {
		CommandName: "touch",
		Summary:     "Change file timestamps or create an empty file.",
		Description: "The `touch` command is used to create an empty file or update the access and modification times of an existing file.",
		Examples: []Example{
			{Command: "touch new_file.txt", Explanation: "Creates an empty file named `new_file.txt` if it does not exist."},
			{Command: "touch existing_file.txt", Explanation: "Updates the last modification time of `existing_file.txt` to the current time."},
		},
	},
	"cp": {
		CommandName: "cp",
		Summary:     "Copy files and directories.",
		Description: "The `cp` command copies files or directories.",
		Examples: []Example{
			{Command: "cp source.txt destination.txt", Explanation: "Copies `source.txt` to `destination.txt`."},
			{Command: "cp -r source_dir/ dest_dir/", Explanation: "Recursively copies the `source_dir` directory to `dest_dir`."},
			{Command: "cp -i file.txt /backup/", Explanation: "Copies `file.txt` to `/backup/`, prompting before overwriting."},
		},
	},
	"mv": {
		CommandName: "mv",
		Summary:     "Move or rename files and directories.",
		Description: "The `mv` command moves files or directories from one place to another. It can also be used to rename files or directories.",
		Examples: []Example{
			{Command: "mv old_name.txt new_name.txt", Explanation: "Renames `old_name.txt` to `new_name.txt`."},
			{Command: "mv file.txt /tmp/", Explanation: "Moves `file.txt` to the `/tmp/` directory."},
			{Command: "mv -i source.txt dest.txt", Explanation: "Moves `source.txt` to `dest.txt`, prompting before overwriting."},
		},
	},
	"rm": {
		CommandName: "rm",
		Summary:     "Remove files or directories.",
		Description: "The `rm` command is used to remove files. Use with caution, as removed files are generally not recoverable.",
		Examples: []Example{
			{Command: "rm file.txt", Explanation: "Removes the file `file.txt`."},
			{Command: "rm -i file.txt", Explanation: "Prompts for confirmation before removing `file.txt`."},
			{Command: "rm -r old_directory", Explanation: "Recursively removes the directory `old_directory` and its contents."},
			{Command: "rm -rf data/", Explanation: "Forcefully and recursively removes the `data` directory. VERY DANGEROUS!"},
		},
	},
	"cat": {
		CommandName: "cat",
		Summary:     "Concatenate files and print on the standard output.",
		Description: "The `cat` command reads data from files, and outputs their contents to standard output.",
		Examples: []Example{
			{Command: "cat file.txt", Explanation: "Display the content of `file.txt`."},
			{Command: "cat file1.txt file2.txt > newfile.txt", Explanation: "Concatenate two files into a new file."},
		},
	},
	"echo": {
		CommandName: "echo",
		Summary:     "Display a line of text.",
		Description: "The `echo` command prints its arguments to standard output.",
		Examples: []Example{
			{Command: "echo \"Hello, World!\"", Explanation: "Prints \"Hello, World!\" to the terminal."},
			{Command: "echo \"Saving...\" > status.txt", Explanation: "Writes the text \"Saving...\" into the file `status.txt`."},
		},
	},
	"man": {
		CommandName: "man",
		Summary:     "Display the manual page for a command.",
		Description: "The `man` command is used to view the manual pages for other commands, providing detailed information on their usage.",
		Examples: []Example{
			{Command: "man ls", Explanation: "Shows the manual page for the `ls` command."},
		},
	},
	"clear": {
		CommandName: "clear",
		Summary:     "Clear the terminal screen.",
		Description: "The `clear` command clears your terminal screen.",
		Examples: []Example{
			{Command: "clear", Explanation: "Clears all previous text from the terminal display."},
		},
	},
	"history": {
		CommandName: "history",
		Summary:     "Display command history.",
		Description: "The `history` command shows a list of previously executed commands.",
		Examples: []Example{
			{Command: "history", Explanation: "Lists the recent command history."},
			{Command: "history 10", Explanation: "Shows the last 10 commands."},
			{Command: "!123", Explanation: "Executes command number 123 from the history."},
		},
	},
	"whoami": {
		CommandName: "whoami",
		Summary:     "Print effective user ID.",
		Description: "The `whoami` command prints the username of the currently logged-in user.",
		Examples: []Example{
			{Command: "whoami", Explanation: "Displays your current username."},
		},
	},
	"date": {
		CommandName: "date",
		Summary:     "Print or set the system date and time.",
		Description: "The `date` command displays the current date and time. It can also be used to format the output.",
		Examples: []Example{
			{Command: "date", Explanation: "Shows the current date and time."},
			{Command: "date +\"%Y-%m-%d\"", Explanation: "Displays the date in YYYY-MM-DD format."},
		},
	},
	"cal": {
		CommandName: "cal",
		Summary:     "Display a calendar.",
		Description: "The `cal` command displays a simple calendar in the terminal.",
		Examples: []Example{
			{Command: "cal", Explanation: "Shows the calendar for the current month."},
			{Command: "cal 2024", Explanation: "Shows the calendar for the entire year 2024."},
		},
	},
	"uname": {
		CommandName: "uname",
		Summary:     "Print system information.",
		Description: "The `uname` command prints basic information about the system name, version, and other details.",
		Examples: []Example{
			{Command: "uname", Explanation: "Prints the kernel name (e.g., Linux)."},
			{Command: "uname -a", Explanation: "Prints all available system information."},
		},
	},
	"head": {
		CommandName: "head",
		Summary:     "Output the first part of files.",
		Description: "The `head` command displays the first few lines of a file.",
		Examples: []Example{
			{Command: "head file.txt", Explanation: "Shows the first 10 lines of `file.txt`."},
			{Command: "head -n 5 file.txt", Explanation: "Shows the first 5 lines of `file.txt`."},
		},
	},
	"tail": {
		CommandName: "tail",
		Summary:     "Output the last part of files.",
		Description: "The `tail` command displays the last few lines of a file.",
		Examples: []Example{
			{Command: "tail file.txt", Explanation: "Shows the last 10 lines of `file.txt`."},
			{Command: "tail -n 5 file.txt", Explanation: "Shows the last 5 lines of `file.txt`."},
			{Command: "tail -f /var/log/syslog", Explanation: "Follows the log file, showing new lines as they are added."},
		},
	},
	"less": {
		CommandName: "less",
		Summary:     "Opposite of more; a file pager.",
		Description: "`less` is a program that allows you to view files page by page. It is more powerful than `more` as it allows backward navigation.",
		Examples: []Example{
			{Command: "less long_file.txt", Explanation: "Opens `long_file.txt` for viewing. Use arrow keys to scroll and `q` to quit."},
		},
	},
	"file": {
		CommandName: "file",
		Summary:     "Determine file type.",
		Description: "The `file` command inspects a file and tells you what type of file it is (e.g., text, image, executable).",
		Examples: []Example{
			{Command: "file document.pdf", Explanation: "Tells you that `document.pdf` is a PDF document."},
			{Command: "file script.sh", Explanation: "Identifies `script.sh` as a shell script."},
		},
	},
	"wc": {
		CommandName: "wc",
		Summary:     "Print newline, word, and byte counts for each file.",
		Description: "The `wc` (word count) command counts the number of lines, words, and characters in a file.",
		Examples: []Example{
			{Command: "wc file.txt", Explanation: "Shows lines, words, and bytes in `file.txt`."},
			{Command: "wc -l file.txt", Explanation: "Counts only the number of lines."},
			{Command: "wc -w file.txt", Explanation: "Counts only the number of words."},
		},
	},
	"sort": {
		CommandName: "sort",
		Summary:     "Sort lines of text files.",
		Description: "The `sort` command sorts the lines of a text file alphabetically or numerically.",
		Examples: []Example{
			{Command: "sort names.txt", Explanation: "Sorts the lines in `names.txt` alphabetically."},
			{Command: "sort -n numbers.txt", Explanation: "Sorts the lines in `numbers.txt` numerically."},
			{Command: "sort -r names.txt", Explanation: "Sorts in reverse order."},
		},
	},
	"uniq": {
		CommandName: "uniq",
		Summary:     "Report or omit repeated lines.",
		Description: "The `uniq` command filters adjacent, duplicate lines from a file. The input file must be sorted first.",
		Examples: []Example{
			{Command: "sort names.txt | uniq", Explanation: "Sorts `names.txt` and removes duplicate adjacent lines."},
			{Command: "sort names.txt | uniq -c", Explanation: "Counts the occurrences of each line."},
		},
	},
	"which": {
		CommandName: "which",
		Summary:     "Locate a command.",
		Description: "The `which` command shows the full path of a command executable.",
		Examples: []Example{
			{Command: "which python", Explanation: "Shows the path to the python executable, e.g., `/usr/bin/python`."},
		},
	},
	"alias": {
		CommandName: "alias",
		Summary:     "Create a shortcut for a command.",
		Description: "The `alias` command allows you to create your own short names for longer commands.",
		Examples: []Example{
			{Command: "alias ll=\"ls -l\"", Explanation: "Creates an alias `ll` that runs `ls -l`."},
			{Command: "alias", Explanation: "Lists all currently defined aliases."},
		},
	},
	"unalias": {
		CommandName: "unalias",
		Summary:     "Remove an alias.",
		Description: "The `unalias` command removes an alias that was previously defined.",
		Examples: []Example{
			{Command: "unalias ll", Explanation: "Removes the `ll` alias."},
		},
	},
	"exit": {
		CommandName: "exit",
		Summary:     "Exit the shell.",
		Description: "The `exit` command terminates the current shell session.",
		Examples: []Example{
			{Command: "exit", Explanation: "Closes the terminal or ends the shell script."},
		},
	},
	"uptime": {
		CommandName: "uptime",
		Summary:     "Tell how long the system has been running.",
		Description: "The `uptime` command shows the current time, how long the system has been running, how many users are logged on, and the system load averages.",
		Examples: []Example{
			{Command: "uptime", Explanation: "Displays system uptime and load."},
		},
	},
	// Intermediate
	"find": {
		CommandName: "find",
		Summary:     "Search for files in a directory hierarchy.",
		Description: "The `find` command is a powerful tool for searching for files and directories based on various criteria like name, size, modification time, etc.",
		Examples: []Example{
			{Command: "find . -name \"*.txt\"", Explanation: "Finds all files ending with `.txt` in the current directory and subdirectories."},
			{Command: "find /home -user bob", Explanation: "Finds all files owned by the user `bob` in `/home`."},
			{Command: "find . -type d", Explanation: "Finds all directories in the current location."},
			{Command: "find . -mtime -7", Explanation: "Finds files modified in the last 7 days."},
		},
	},
	"grep": {
		CommandName: "grep",
		Summary:     "Search for patterns in text.",
		Description: "`grep` (global regular expression print) searches for lines containing a match to the given pattern and prints them. It is an incredibly powerful and versatile tool for text processing.",
		Examples: []Example{
			{Command: "grep \"error\" log.txt", Explanation: "Search for the word \"error\" in the file `log.txt`."},
			{Command: "grep -i \"hello\" file.txt", Explanation: "Search for \"hello\" case-insensitively."},
			{Command: "grep -r \"API_KEY\" /etc/", Explanation: "Recursively search for \"API_KEY\" in all files under the `/etc/` directory."},
			{Command: "cat data.txt | grep -v \"debug\"", Explanation: "Display all lines from `data.txt` that do not contain the word \"debug\"."},
		},
	},
	"locate": {
		CommandName: "locate",
		Summary:     "Find files by name, quickly.",
		Description: "`locate` uses a pre-built database of files and directories to find files quickly. The database is usually updated daily by a cron job.",
		Examples: []Example{
			{Command: "locate my_document.pdf", Explanation: "Quickly finds the path to `my_document.pdf`."},
			{Command: "sudo updatedb", Explanation: "Manually updates the `locate` database."},
		},
	},
	"df": {
		CommandName: "df",
		Summary:     "Report file system disk space usage.",
		Description: "The `df` (disk free) command displays the amount of available disk space for file systems.",
		Examples: []Example{
			{Command: "df", Explanation: "Shows disk usage in 1K blocks."},
			{Command: "df -h", Explanation: "Shows disk usage in human-readable format (KB, MB, GB)."},
		},
	},
	"du": {
		CommandName: "du",
		Summary:     "Estimate file and directory space usage.",
		Description: "The `du` (disk usage) command shows the disk space used by files and directories.",
		Examples: []Example{
			{Command: "du", Explanation: "Shows disk usage for all directories in the current path."},
			{Command: "du -sh /var/log", Explanation: "Shows a human-readable summary of the total size of the `/var/log` directory."},
		},
	},
	"top": {
		CommandName: "top",
		Summary:     "Display Linux processes.",
		Description: "The `top` command provides a dynamic, real-time view of the running processes on a system. It displays system summary information as well as a list of tasks currently being managed by the kernel.",
		Examples: []Example{
			{Command: "top", Explanation: "Starts the interactive process viewer. Press `q` to quit."},
		},
	},
	"ps": {
		CommandName: "ps",
		Summary:     "Report a snapshot of the current processes.",
		Description: "The `ps` command shows information about active processes.",
		Examples: []Example{
			{Command: "ps", Explanation: "Shows processes for the current user in the current terminal."},
			{Command: "ps aux", Explanation: "Shows all running processes on the system in BSD style."},
			{Command: "ps -ef", Explanation: "Shows all running processes on the system in System V style."},
		},
	},
	"kill": {
		CommandName: "kill",
		Summary:     "Send a signal to a process.",
		Description: "The `kill` command is used to send a signal to a process, most commonly to terminate it.",
		Examples: []Example{
			{Command: "kill 12345", Explanation: "Sends the default TERM signal to the process with PID 12345, asking it to terminate."},
			{Command: "kill -9 12345", Explanation: "Sends the KILL signal to forcefully terminate the process with PID 12345."},
		},
	},
	"killall": {
		CommandName: "killall",
		Summary:     "Kill processes by name.",
		Description: "The `killall` command terminates processes based on their name, rather than their PID.",
		Examples: []Example{
			{Command: "killall firefox", Explanation: "Kills all processes named `firefox`."},
		},
	},
	"chmod": {
		CommandName: "chmod",
		Summary:     "Change file mode bits (permissions).",
		Description: "The `chmod` command changes the access permissions for files and directories. Permissions can be set for the owner (u), the group (g), and others (o).",
		Examples: []Example{
			{Command: "chmod +x script.sh", Explanation: "Make `script.sh` executable for everyone."},
			{Command: "chmod 755 my_script.sh", Explanation: "Set permissions to read/write/execute for owner, and read/execute for group and others (common for scripts)."},
			{Command: "chmod 600 private.key", Explanation: "Set permissions so that only the owner has read and write access (common for private keys)."},
			{Command: "chmod -R 755 public_html", Explanation: "Recursively set permissions for the `public_html` directory and all its contents."},
		},
	},
	"chown": {
		CommandName: "chown",
		Summary:     "Change file owner and group.",
		Description: "The `chown` command is used to change the ownership of files and directories.",
		Examples: []Example{
			{Command: "chown user:group file.txt", Explanation: "Changes the owner to `user` and group to `group` for `file.txt`."},
			{Command: "chown bob file.txt", Explanation: "Changes only the owner of `file.txt` to `bob`."},
			{Command: "chown -R user:group /var/www", Explanation: "Recursively changes ownership for the `/var/www` directory."},
		},
	},
	"tar": {
		CommandName: "tar",
		Summary:     "Archiving utility.",
		Description: "The `tar` command is used to create and extract archive files. It is often combined with a compression utility like `gzip` or `bzip2`.",
		Examples: []Example{
			{Command: "tar -cvf archive.tar /path/to/dir", Explanation: "Create an archive named `archive.tar` from a directory."},
			{Command: "tar -xvf archive.tar", Explanation: "Extract files from `archive.tar`."},
			{Command: "tar -czvf archive.tar.gz /path/to/dir", Explanation: "Create a gzipped archive."},
			{Command: "tar -xzvf archive.tar.gz", Explanation: "Extract a gzipped archive."},
		},
	},
	"unzip": {
		CommandName: "unzip",
		Summary:     "List, test, and extract compressed files in a ZIP archive.",
		Description: "The `unzip` command is used to extract files from a `.zip` archive.",
		Examples: []Example{
			{Command: "unzip archive.zip", Explanation: "Extracts `archive.zip` in the current directory."},
			{Command: "unzip archive.zip -d /path/to/destination", Explanation: "Extracts `archive.zip` to a specific directory."},
		},
	},
	"scp": {
		CommandName: "scp",
		Summary:     "Secure copy (remote file copy program).",
		Description: "`scp` allows you to securely copy files between hosts on a network. It uses ssh for data transfer.",
		Examples: []Example{
			{Command: "scp file.txt user@remote:/path/", Explanation: "Copy `file.txt` from local to a remote host."},
			{Command: "scp user@remote:/path/file.txt .", Explanation: "Copy `file.txt` from a remote host to the current local directory."},
		},
	},
	"wget": {
		CommandName: "wget",
		Summary:     "The non-interactive network downloader.",
		Description: "`wget` is a free utility for non-interactive download of files from the web. It supports HTTP, HTTPS, and FTP protocols.",
		Examples: []Example{
			{Command: "wget https://example.com/file.zip", Explanation: "Downloads `file.zip` from the specified URL."},
			{Command: "wget -c https://example.com/large-file.zip", Explanation: "Resumes a partially downloaded file."},
		},
	},
	"curl": {
		CommandName: "curl",
		Summary:     "Transfer a URL.",
		Description: "`curl` is a tool to transfer data from or to a server, using one of the many supported protocols (HTTP, HTTPS, FTP, etc.). It is often used for testing APIs.",
		Examples: []Example{
			{Command: "curl https://example.com", Explanation: "Displays the content of the URL."},
			{Command: "curl -O https://example.com/file.zip", Explanation: "Downloads the file with its original name."},
			{Command: "curl -X POST -d \"param1=value1\" https://api.example.com/data", Explanation: "Sends a POST request to an API."},
		},
	},
	"nano": {
		CommandName: "nano",
		Summary:     "A simple and easy-to-use text editor.",
		Description: "`nano` is a character-based text editor for Unix-like systems. It is known for its simplicity compared to `vi` or `emacs`.",
		Examples: []Example{
			{Command: "nano filename.txt", Explanation: "Opens `filename.txt` for editing. Use Ctrl+X to exit."},
		},
	},
	"vi": {
		CommandName: "vi",
		Summary:     "A powerful and ubiquitous text editor.",
		Description: "`vi` (or its modern version, `vim`) is a highly configurable text editor built to enable efficient text editing. It has a steep learning curve but is very powerful.",
		Examples: []Example{
			{Command: "vi filename.txt", Explanation: "Opens `filename.txt`. Press `i` for insert mode, `Esc` to exit insert mode, and `:wq` to write and quit."},
		},
	},
	"env": {
		CommandName: "env",
		Summary:     "Run a program in a modified environment.",
		Description: "The `env` command can be used to print a list of environment variables or to run another utility in a custom environment without modifying the current one.",
		Examples: []Example{
			{Command: "env", Explanation: "Lists all environment variables."},
		},
	},
	"export": {
		CommandName: "export",
		Summary:     "Set an environment variable.",
		Description: "The `export` command makes a variable available to all child processes of the current shell.",
		Examples: []Example{
			{Command: "export MY_VAR=\"hello\"", Explanation: "Sets the environment variable `MY_VAR` to \"hello\"."},
		},
	},
	"ping": {
		CommandName: "ping",
		Summary:     "Send ICMP ECHO_REQUEST to network hosts.",
		Description: "`ping` is a utility to test the reachability of a host on an IP network. It measures the round-trip time for messages sent from the originating host to a destination computer.",
		Examples: []Example{
			{Command: "ping google.com", Explanation: "Pings `google.com` to check for a connection. Press Ctrl+C to stop."},
		},
	},
	"traceroute": {
		CommandName: "traceroute",
		Summary:     "Print the route packets trace to network host.",
		Description: "`traceroute` tracks the path a packet takes from your computer to a destination host, showing the IP addresses of all the routers it passes through.",
		Examples: []Example{
			{Command: "traceroute google.com", Explanation: "Traces the network path to `google.com`."},
		},
	},
	"ifconfig": {
		CommandName: "ifconfig",
		Summary:     "Configure a network interface.",
		Description: "`ifconfig` is used to view and configure network interfaces. It has been largely replaced by the `ip` command on modern systems but is still in use.",
		Examples: []Example{
			{Command: "ifconfig", Explanation: "Displays information about all active network interfaces."},
		},
	},
	"ip": {
		CommandName: "ip",
		Summary:     "Show / manipulate routing, network devices, interfaces and tunnels.",
		Description: "The `ip` command is a modern and powerful tool for network configuration on Linux, intended to replace older tools like `ifconfig` and `route`.",
		Examples: []Example{
			{Command: "ip addr show", Explanation: "Shows information about network interfaces and their IP addresses."},
			{Command: "ip route show", Explanation: "Displays the routing table."},
		},
	},
	"mount": {
		CommandName: "mount",
		Summary:     "Mount a filesystem.",
		Description: "The `mount` command attaches a storage device or filesystem to a directory in the file system tree, making it accessible.",
		Examples: []Example{
			{Command: "mount /dev/sda1 /mnt/data", Explanation: "Mounts the partition `/dev/sda1` to the `/mnt/data` directory."},
			{Command: "mount", Explanation: "Lists all currently mounted filesystems."},
		},
	},
	"umount": {
		CommandName: "umount",
		Summary:     "Unmount file systems.",
		Description: "The `umount` command detaches a mounted filesystem from the file hierarchy.",
		Examples: []Example{
			{Command: "umount /mnt/data", Explanation: "Unmounts the filesystem at `/mnt/data`."},
		},
	},
	"free": {
		CommandName: "free",
		Summary:     "Display amount of free and used memory in the system.",
		Description: "The `free` command provides a quick overview of the system's memory usage, including total, used, free, and shared memory.",
		Examples: []Example{
			{Command: "free", Explanation: "Shows memory usage in kilobytes."},
			{Command: "free -h", Explanation: "Shows memory usage in a human-readable format."},
		},
	},
	"hostname": {
		CommandName: "hostname",
		Summary:     "Show or set the system's host name.",
		Description: "`hostname` prints the name of the current host.",
		Examples: []Example{
			{Command: "hostname", Explanation: "Displays the current hostname."},
		},
	},
	"hostnamectl": {
		CommandName: "hostnamectl",
		Summary:     "Control the system hostname.",
		Description: "`hostnamectl` is used to query and change the system hostname and related settings on modern systemd-based systems.",
		Examples: []Example{
			{Command: "hostnamectl", Explanation: "Shows the current hostname status."},
			{Command: "sudo hostnamectl set-hostname new-name", Explanation: "Changes the system hostname to `new-name`."},
		},
	},
	// Advanced
	"netstat": {
		CommandName: "netstat",
		Summary:     "Print network connections, routing tables, interface statistics.",
		Description: "`netstat` is a command-line tool that displays network connections for TCP, routing tables, and a number of network interface and network protocol statistics. It has been largely superseded by `ss` but is still widely used.",
		Examples: []Example{
			{Command: "netstat -tuln", Explanation: "Lists all listening TCP and UDP ports numerically without resolving hostnames."},
			{Command: "netstat -anp", Explanation: "Shows all connections (listening and non-listening) and the programs associated with them."},
			{Command: "netstat -r", Explanation: "Displays the kernel IP routing table."},
			{Command: "netstat -i", Explanation: "Shows a list of network interfaces."},
		},
	},
	"ss": {
		CommandName: "ss",
		Summary:     "Another utility to investigate sockets.",
		Description: "`ss` is a modern replacement for `netstat`. It is used to dump socket statistics and displays information similar to netstat but can be faster.",
		Examples: []Example{
			{Command: "ss -tuln", Explanation: "Lists all listening TCP and UDP ports numerically."},
			{Command: "ss -tp", Explanation: "Shows TCP connections and the processes using them."},
		},
	},
	"iptables": {
		CommandName: "iptables",
		Summary:     "Administration tool for IPv4 packet filtering and NAT.",
		Description: "`iptables` is a user-space utility program that allows a system administrator to configure the IP packet filter rules of the Linux kernel firewall, implemented as different Netfilter modules.",
		Examples: []Example{
			{Command: "sudo iptables -L", Explanation: "Lists all current firewall rules."},
			{Command: "sudo iptables -A INPUT -p tcp --dport 22 -j ACCEPT", Explanation: "Allows incoming TCP traffic on port 22 (SSH)."},
		},
	},
	"ufw": {
		CommandName: "ufw",
		Summary:     "Uncomplicated Firewall.",
		Description: "`ufw` is a user-friendly frontend for managing `iptables`. Its goal is to make managing a firewall easy and accessible.",
		Examples: []Example{
			{Command: "sudo ufw status", Explanation: "Checks the status of the firewall."},
			{Command: "sudo ufw enable", Explanation: "Enables the firewall."},
			{Command: "sudo ufw allow ssh", Explanation: "Allows incoming traffic for the SSH service."},
		},
	},
	"nmap": {
		CommandName: "nmap",
		Summary:     "Network exploration tool and security / port scanner.",
		Description: "`nmap` is a powerful open-source tool for network discovery and security auditing. It can discover hosts, services, operating systems, and vulnerabilities on a network.",
		Examples: []Example{
			{Command: "nmap scanme.nmap.org", Explanation: "Scans the specified host for common open ports."},
			{Command: "nmap -p 1-1000 localhost", Explanation: "Scans ports 1 through 1000 on the local machine."},
		},
	},
	"htop": {
		CommandName: "htop",
		Summary:     "Interactive process viewer.",
		Description: "`htop` is an interactive process viewer and system monitor. It is an improved version of `top`, with features like color, mouse support, and easier process management.",
		Examples: []Example{
			{Command: "htop", Explanation: "Starts the interactive process viewer."},
		},
	},
	"vmstat": {
		CommandName: "vmstat",
		Summary:     "Report virtual memory statistics.",
		Description: "`vmstat` reports information about processes, memory, paging, block IO, traps, and cpu activity.",
		Examples: []Example{
			{Command: "vmstat 1", Explanation: "Displays a new report every second."},
		},
	},
	"lsof": {
		CommandName: "lsof",
		Summary:     "List open files.",
		Description: "`lsof` is a command meaning \"list open files\", which is used in many Unix-like systems to report a list of all open files and the processes that opened them.",
		Examples: []Example{
			{Command: "sudo lsof -i :80", Explanation: "Lists processes using TCP port 80."},
			{Command: "lsof /var/log/syslog", Explanation: "Shows which process has the syslog file open."},
		},
	},
	"rsync": {
		CommandName: "rsync",
		Summary:     "A fast, versatile, remote (and local) file-copying tool.",
		Description: "`rsync` is an efficient utility for synchronizing files and directories between two locations. It minimizes data transfer by only copying the parts of files that have changed.",
		Examples: []Example{
			{Command: "rsync -avh /path/to/source /path/to/destination", Explanation: "Archives, verbosely, and human-readably syncs a local directory."},
			{Command: "rsync -avh user@remote:/path/ /local/path/", Explanation: "Syncs a remote directory to a local one."},
		},
	},
	"awk": {
		CommandName: "awk",
		Summary:     "Pattern scanning and processing language.",
		Description: "`awk` is a powerful scripting language for processing text files. It processes files line by line and can perform actions on lines that match specific patterns.",
		Examples: []Example{
			{Command: "awk '{print $1}' file.txt", Explanation: "Prints the first column of `file.txt`."},
		},
	},
	"sed": {
		CommandName: "sed",
		Summary:     "Stream editor for filtering and transforming text.",
		Description: "`sed` is a stream editor. It can perform basic text transformations on an input stream (a file or input from a pipeline).",
		Examples: []Example{
			{Command: "sed 's/old/new/g' file.txt", Explanation: "Replaces all occurrences of \"old\" with \"new\" in `file.txt` and prints the result."},
		},
	},
	"cron": {
		CommandName: "cron",
		Summary:     "Daemon to execute scheduled commands.",
		Description: "`cron` is a time-based job scheduler in Unix-like computer operating systems. Users who set up and maintain software environments use cron to schedule jobs to run periodically at fixed times, dates, or intervals.",
		Examples: []Example{
			{Command: "crontab -l", Explanation: "Lists the current user's cron jobs."},
			{Command: "crontab -e", Explanation: "Opens the cron table for editing."},
		},
	},
	"at": {
		CommandName: "at",
		Summary:     "Execute commands at a later time.",
		Description: "The `at` command schedules a command to be run once at a particular time in the future.",
		Examples: []Example{
			{Command: "at now + 10 minutes", Explanation: "Opens a prompt to enter commands to be executed in 10 minutes."},
		},
	},
	"journalctl": {
		CommandName: "journalctl",
		Summary:     "Query the systemd journal.",
		Description: "`journalctl` is used to query and display messages from the systemd journal. The journal is a centralized logging system on modern Linux distributions.",
		Examples: []Example{
			{Command: "journalctl", Explanation: "Shows all journal entries."},
			{Command: "journalctl -u nginx.service", Explanation: "Shows logs for the `nginx` service."},
			{Command: "journalctl -f", Explanation: "Follows the journal, showing new messages in real time."},
		},
	},
	"tcpdump": {
		CommandName: "tcpdump",
		Summary:     "Dump traffic on a network.",
		Description: "`tcpdump` is a powerful command-line packet analyzer. It allows the user to display TCP/IP and other packets being transmitted or received over a network.",
		Examples: []Example{
			{Command: "sudo tcpdump -i eth0", Explanation: "Captures packets on the `eth0` interface."},
		},
	},
	"strace": {
		CommandName: "strace",
		Summary:     "Trace system calls and signals.",
		Description: "`strace` is a debugging utility that monitors the system calls a process makes and the signals it receives.",
		Examples: []Example{
			{Command: "strace ls -l", Explanation: "Traces the system calls made by the `ls -l` command."},
		},
	},
	"nc": {
		CommandName: "nc",
		Summary:     "Arbitrary TCP and UDP connections and listens (netcat).",
		Description: "`nc` (netcat) is a versatile networking utility for reading from and writing to network connections using TCP or UDP. It's often called the \"Swiss-army knife for TCP/IP\".",
		Examples: []Example{
			{Command: "nc -zv google.com 80", Explanation: "Checks if port 80 is open on google.com."},
		},
	},
	"dig": {
		CommandName: "dig",
		Summary:     "DNS lookup utility.",
		Description: "`dig` (domain information groper) is a flexible tool for interrogating DNS name servers.",
		Examples: []Example{
			{Command: "dig google.com", Explanation: "Performs a DNS lookup for `google.com`."},
		},
	},
	"whois": {
		CommandName: "whois",
		Summary:     "Client for the whois directory service.",
		Description: "`whois` searches for an object in a `whois` database. This is usually used to find the registration and ownership details of a domain name.",
		Examples: []Example{
			{Command: "whois google.com", Explanation: "Looks up `whois` information for the `google.com` domain."},
		},
	},
	"iptables-save": {
		CommandName: "iptables-save",
		Summary:     "Dump IP tables rules to stdout.",
		Description: "`iptables-save` is used to dump the contents of an IP table in a parsable format to STDOUT.",
		Examples: []Example{
			{Command: "sudo iptables-save", Explanation: "Prints the current iptables rules."},
		},
	},
	"systemctl": {
		CommandName: "systemctl",
		Summary:     "Control the systemd system and service manager.",
		Description: "`systemctl` is the primary tool for managing services on Linux distributions that use systemd. It can be used to start, stop, restart, enable, disable, and check the status of services.",
		Examples: []Example{
			{Command: "systemctl status nginx.service", Explanation: "Check the current status of the nginx service."},
			{Command: "systemctl start apache2", Explanation: "Start the Apache web server service."},
			{Command: "systemctl stop sshd", Explanation: "Stop the SSH daemon service."},
			{Command: "systemctl enable cron.service", Explanation: "Enable the cron service to start automatically on system boot."},
		},
	},
	"service": {
		CommandName: "service",
		Summary:     "Run a System V init script.",
		Description: "The `service` command is an older way to manage services on systems using System V init. On systemd systems, it often acts as a wrapper for `systemctl`.",
		Examples: []Example{
			{Command: "sudo service ssh status", Explanation: "Checks the status of the SSH service."},
		},
	},
	"dmesg": {
		CommandName: "dmesg",
		Summary:     "Print or control the kernel ring buffer.",
		Description: "`dmesg` is used to examine or control the kernel ring buffer. It is useful for debugging hardware issues or driver problems.",
		Examples: []Example{
			{Command: "dmesg", Explanation: "Prints all messages from the kernel ring buffer."},
			{Command: "dmesg | grep usb", Explanation: "Shows kernel messages related to USB devices."},
		},
	},
	"lsblk": {
		CommandName: "lsblk",
		Summary:     "List block devices.",
		Description: "`lsblk` lists information about all available or the specified block devices (like hard drives and flash drives).",
		Examples: []Example{
			{Command: "lsblk", Explanation: "Lists all block devices in a tree-like format."},
		},
	},
	"blkid": {
		CommandName: "blkid",
		Summary:     "Locate/print block device attributes.",
		Description: "`blkid` is a command-line utility to locate and print block device attributes (e.g., UUID, LABEL, TYPE).",
		Examples: []Example{
			{Command: "sudo blkid", Explanation: "Displays attributes for all block devices."},
		},
	},
	"fdisk": {
		CommandName: "fdisk",
		Summary:     "Manipulate disk partition table.",
		Description: "`fdisk` is a dialog-driven program for creation and manipulation of partition tables. It understands GPT, MBR, Sun, SGI and OSF partition tables.",
		Examples: []Example{
			{Command: "sudo fdisk -l", Explanation: "Lists the partition tables for all devices."},
		},
	},
	"parted": {
		CommandName: "parted",
		Summary:     "A partition manipulation program.",
		Description: "`parted` is a program for creating and manipulating partition tables. It is more modern than `fdisk` and supports more partition table formats.",
		Examples: []Example{
			{Command: "sudo parted -l", Explanation: "Lists partition layouts on all block devices."},
		},
	},
	"sar": {
		CommandName: "sar",
		Summary:     "Collect, report, or save system activity information.",
		Description: "The `sar` command writes to standard output the contents of selected cumulative activity counters in the operating system.",
		Examples: []Example{
			{Command: "sar -u 1 5", Explanation: "Reports CPU utilization 5 times every 1 second."},
		},
	},
	"iostat": {
		CommandName: "iostat",
		Summary:     "Report Central Processing Unit (CPU) statistics and input/output statistics for devices and partitions.",
		Description: "`iostat` is used for monitoring system input/output device loading.",
		Examples: []Example{
			{Command: "iostat", Explanation: "Shows a basic CPU and I/O report."},
		},
	},
	"ethtool": {
		CommandName: "ethtool",
		Summary:     "Query or control network driver and hardware settings.",
		Description: "`ethtool` is a utility for displaying and modifying the parameters of network interface controllers (NICs) and their associated drivers.",
		Examples: []Example{
			{Command: "ethtool eth0", Explanation: "Displays settings for the `eth0` network interface."},
		},
	},
	// Expert
	"strings": {
		CommandName: "strings",
		Summary:     "Print the sequences of printable characters in files.",
		Description: "The `strings` command is used to find and display the printable strings in a binary or data file.",
		Examples: []Example{
			{Command: "strings /usr/bin/ls", Explanation: "Shows printable text inside the `ls` executable file."},
		},
	},
	"xargs": {
		CommandName: "xargs",
		Summary:     "Build and execute command lines from standard input.",
		Description: "`xargs` reads items from standard input and executes a command with those items as arguments. It's useful for processing a large number of files.",
		Examples: []Example{
			{Command: "find . -name \"*.log\" | xargs rm", Explanation: "Finds all `.log` files and uses `xargs` to pass them to `rm` for deletion."},
		},
	},
	"tee": {
		CommandName: "tee",
		Summary:     "Read from standard input and write to standard output and files.",
		Description: "The `tee` command is used to split the output of a program, sending it to both the screen (standard output) and a file.",
		Examples: []Example{
			{Command: "ls -l | tee file.txt", Explanation: "Displays the output of `ls -l` on the screen and also saves it to `file.txt`."},
		},
	},
	"yes": {
		CommandName: "yes",
		Summary:     "Output a string repeatedly until killed.",
		Description: "`yes` repeatedly outputs a string (by default, \"y\") followed by a newline. It is often used to provide automated affirmative responses to scripts.",
		Examples: []Example{
			{Command: "yes | sudo apt install package", Explanation: "Automatically answers \"yes\" to any confirmation prompts during package installation."},
		},
	},
	"watch": {
		CommandName: "watch",
		Summary:     "Execute a program periodically, showing output fullscreen.",
		Description: "`watch` runs a command repeatedly and displays its output and errors. This allows you to see the output change over time.",
		Examples: []Example{
			{Command: "watch -n 1 date", Explanation: "Runs the `date` command every second."},
		},
	},
	"tree": {
		CommandName: "tree",
		Summary:     "List contents of directories in a tree-like format.",
		Description: "The `tree` command provides a recursive, indented listing of files and directories.",
		Examples: []Example{
			{Command: "tree", Explanation: "Displays the current directory as a tree."},
		},
	},
	"basename": {
		CommandName: "basename",
		Summary:     "Strip directory and suffix from filenames.",
		Description: "`basename` prints the filename portion of a path.",
		Examples: []Example{
			{Command: "basename /usr/bin/sort", Explanation: "Outputs \"sort\"."},
		},
	},
	"dirname": {
		CommandName: "dirname",
		Summary:     "Strip last component from file name.",
		Description: "`dirname` prints the directory portion of a path.",
		Examples: []Example{
			{Command: "dirname /usr/bin/sort", Explanation: "Outputs \"/usr/bin\"."},
		},
	},
	"split": {
		CommandName: "split",
		Summary:     "Split a file into pieces.",
		Description: "The `split` command is used to break up a large file into smaller, more manageable pieces.",
		Examples: []Example{
			{Command: "split -l 1000 largefile.txt prefix_", Explanation: "Splits `largefile.txt` into files of 1000 lines each, with names starting `prefix_`."},
		},
	},
	"join": {
		CommandName: "join",
		Summary:     "Join lines of two files on a common field.",
		Description: "`join` merges two sorted text files based on a common field.",
		Examples: []Example{
			{Command: "join file1.txt file2.txt", Explanation: "Joins two sorted files on their first field."},
		},
	},
	"cut": {
		CommandName: "cut",
		Summary:     "Remove sections from each line of files.",
		Description: "The `cut` command is used for extracting sections from each line of input, usually from a file.",
		Examples: []Example{
			{Command: "cut -d: -f1 /etc/passwd", Explanation: "Extracts the first field (usernames) from the password file, using \":\" as a delimiter."},
		},
	},
	"paste": {
		CommandName: "paste",
		Summary:     "Merge lines of files.",
		Description: "The `paste` command merges corresponding lines from several files side-by-side, separated by tabs.",
		Examples: []Example{
			{Command: "paste file1.txt file2.txt", Explanation: "Merges lines from `file1.txt` and `file2.txt`."},
		},
	},
	"cmp": {
		CommandName: "cmp",
		Summary:     "Compare two files byte by byte.",
		Description: "`cmp` compares two files and reports the first byte and line number where they differ. It is useful for checking if files are identical.",
		Examples: []Example{
			{Command: "cmp file1.txt file2.txt", Explanation: "Compares the two files and reports the first difference."},
		},
	},
	"diff": {
		CommandName: "diff",
		Summary:     "Compare files line by line.",
		Description: "`diff` analyzes two files and prints the lines that are different. It is the basis for many version control systems.",
		Examples: []Example{
			{Command: "diff -u old_version.txt new_version.txt", Explanation: "Compares two files and shows the differences in a unified format."},
		},
	},
	"comm": {
		CommandName: "comm",
		Summary:     "Compare two sorted files line by line.",
		Description: "`comm` compares two sorted files and produces three columns of output: lines unique to file1, lines unique to file2, and lines common to both.",
		Examples: []Example{
			{Command: "comm file1.txt file2.txt", Explanation: "Compares two sorted files."},
		},
	},
	"md5sum": {
		CommandName: "md5sum",
		Summary:     "Compute and check MD5 message digest.",
		Description: "`md5sum` calculates a 128-bit MD5 hash, commonly used to verify file integrity.",
		Examples: []Example{
			{Command: "md5sum file.iso", Explanation: "Calculates the MD5 checksum of `file.iso`."},
		},
	},
	"sha256sum": {
		CommandName: "sha256sum",
		Summary:     "Compute and check SHA256 message digest.",
		Description: "`sha256sum` calculates a 256-bit SHA256 hash, which is more secure than MD5 for integrity verification.",
		Examples: []Example{
			{Command: "sha256sum file.zip", Explanation: "Calculates the SHA256 checksum of `file.zip`."},
		},
	},
	"base64": {
		CommandName: "base64",
		Summary:     "base64 encode/decode data and print to standard output.",
		Description: "The `base64` command encodes binary data into printable ASCII characters, or decodes it back.",
		Examples: []Example{
			{Command: "base64 file.txt", Explanation: "Encodes `file.txt` in base64."},
			{Command: "base64 -d encoded.txt", Explanation: "Decodes a base64 encoded file."},
		},
	},
	"hexdump": {
		CommandName: "hexdump",
		Summary:     "ASCII, decimal, hexadecimal, octal dump.",
		Description: "`hexdump` displays the contents of a file in hexadecimal, octal, decimal, or ASCII formats. It is useful for inspecting binary files.",
		Examples: []Example{
			{Command: "hexdump -C binaryfile", Explanation: "Displays the file in canonical hex+ASCII format."},
		},
	},
	"od": {
		CommandName: "od",
		Summary:     "Dump files in octal and other formats.",
		Description: "`od` (octal dump) is used to display files in various human-readable formats, including octal, hexadecimal, and ASCII.",
		Examples: []Example{
			{Command: "od -c file", Explanation: "Dumps the file showing backslashed character escapes."},
		},
	},
	"lshw": {
		CommandName: "lshw",
		Summary:     "List hardware.",
		Description: "`lshw` is a small tool to extract detailed information on the hardware configuration of the machine.",
		Examples: []Example{
			{Command: "sudo lshw", Explanation: "Displays a comprehensive list of all hardware."},
		},
	},
	"lscpu": {
		CommandName: "lscpu",
		Summary:     "Display information about the CPU architecture.",
		Description: "`lscpu` gathers CPU architecture information from sysfs and /proc/cpuinfo.",
		Examples: []Example{
			{Command: "lscpu", Explanation: "Shows detailed CPU information."},
		},
	},
	"lsusb": {
		CommandName: "lsusb",
		Summary:     "List USB devices.",
		Description: "`lsusb` is a utility for displaying information about USB buses in the system and the devices connected to them.",
		Examples: []Example{
			{Command: "lsusb", Explanation: "Lists all connected USB devices."},
		},
	},
	"lspci": {
		CommandName: "lspci",
		Summary:     "List all PCI devices.",
		Description: "`lspci` is a utility for displaying information about PCI buses in the system and devices connected to them.",
		Examples: []Example{
			{Command: "lspci", Explanation: "Lists all connected PCI devices."},
		},
	},
	"nmcli": {
		CommandName: "nmcli",
		Summary:     "Command-line tool for controlling NetworkManager.",
		Description: "`nmcli` is a command-line client for the NetworkManager, which allows you to manage network connections.",
		Examples: []Example{
			{Command: "nmcli device status", Explanation: "Shows the status of all network devices."},
		},
	},
	"ssh": {
		CommandName: "ssh",
		Summary:     "Secure Shell client (remote login program).",
		Description: "SSH, or Secure Shell, is a protocol used to securely log onto remote systems. It is the primary method used to manage servers and other devices remotely.",
		Examples: []Example{
			{Command: "ssh user@example.com", Explanation: "Connect to `example.com` as the user `user`."},
			{Command: "ssh -p 2222 user@hostname", Explanation: "Connect to a host on a specific port (2222)."},
			{Command: "ssh -i ~/.ssh/id_rsa user@host", Explanation: "Connect using a specific private key file."},
		},
	},
	"ssh-keygen": {
		CommandName: "ssh-keygen",
		Summary:     "Authentication key generation, management and conversion.",
		Description: "`ssh-keygen` generates, manages, and converts authentication keys for SSH.",
		Examples: []Example{
			{Command: "ssh-keygen", Explanation: "Generates a new pair of SSH public and private keys interactively."},
		},
	},
	"ssh-copy-id": {
		CommandName: "ssh-copy-id",
		Summary:     "Use locally available keys to authorize logins on a remote machine.",
		Description: "`ssh-copy-id` is a script that installs your public key in a remote machine's `authorized_keys` file, enabling passwordless SSH logins.",
		Examples: []Example{
			{Command: "ssh-copy-id user@remote_host", Explanation: "Copies your default public key to the remote host for the specified user."},
		},
	},
	"zip": {
		CommandName: "zip",
		Summary:     "Package and compress (archive) files.",
		Description: "`zip` is a compression and file packaging utility. It creates `.zip` archives compatible with other operating systems.",
		Examples: []Example{
			{Command: "zip archive.zip file1.txt file2.txt", Explanation: "Creates `archive.zip` containing the specified files."},
			{Command: "zip -r archive.zip directory/", Explanation: "Recursively zips a directory."},
		},
	},
	"gzip": {
		CommandName: "gzip",
		Summary:     "Compress or expand files.",
		Description: "The `gzip` command compresses files using Lempel-Ziv coding (LZ77). By convention, the original file is replaced by one with a `.gz` extension.",
		Examples: []Example{
			{Command: "gzip myfile.txt", Explanation: "Compresses `myfile.txt` and renames it to `myfile.txt.gz`."},
			{Command: "gzip -k myfile.txt", Explanation: "Compresses `myfile.txt` to `myfile.txt.gz` but keeps the original file."},
			{Command: "gzip -d myfile.txt.gz", Explanation: "Decompresses `myfile.txt.gz` back to `myfile.txt`."},
		},
	},
	"gunzip": {
		CommandName: "gunzip",
		Summary:     "Decompress files compressed with gzip.",
		Description: "`gunzip` is used to decompress files that were compressed using `gzip`. It is equivalent to `gzip -d`.",
		Examples: []Example{
			{Command: "gunzip file.txt.gz", Explanation: "Decompresses `file.txt.gz` to `file.txt`."},
		},
	},
	"bzip2": {
		CommandName: "bzip2",
		Summary:     "A block-sorting file compressor.",
		Description: "`bzip2` is a file compression utility that typically compresses files more effectively than `gzip`, but is slower. Compressed files have a `.bz2` extension.",
		Examples: []Example{
			{Command: "bzip2 file.txt", Explanation: "Compresses `file.txt` to `file.txt.bz2`."},
		},
	},
	"bunzip2": {
		CommandName: "bunzip2",
		Summary:     "Decompress files compressed with bzip2.",
		Description: "`bunzip2` is used to decompress `.bz2` files. It is equivalent to `bzip2 -d`.",
		Examples: []Example{
			{Command: "bunzip2 file.txt.bz2", Explanation: "Decompresses `file.txt.bz2` to `file.txt`."},
		},
	},
	"xz": {
		CommandName: "xz",
		Summary:     "Compress or decompress .xz and .lzma files.",
		Description: "`xz` is a modern compression utility that offers a high compression ratio. Compressed files usually have a `.xz` extension.",
		Examples: []Example{
			{Command: "xz file.tar", Explanation: "Compresses `file.tar` to `file.tar.xz`."},
		},
	},
	"unxz": {
		CommandName: "unxz",
		Summary:     "Decompress .xz files.",
		Description: "`unxz` is used to decompress `.xz` files. It is equivalent to `xz -d`.",
		Examples: []Example{
			{Command: "unxz file.tar.xz", Explanation: "Decompresses `file.tar.xz` to `file.tar`."},
		},
	},
	"stat": {
		CommandName: "stat",
		Summary:     "Display file or file system status.",
		Description: "The `stat` command provides detailed information about a file, such as its size, permissions, access times, and inode number.",
		Examples: []Example{
			{Command: "stat file.txt", Explanation: "Shows detailed status information for `file.txt`."},
		},
	},
	"time": {
		CommandName: "time",
		Summary:     "Run a program and summarize system resource usage.",
		Description: "The `time` command measures how long a command takes to execute, breaking it down into real, user, and system time.",
		Examples: []Example{
			{Command: "time ls -R /", Explanation: "Measures the time it takes to recursively list all files from the root directory."},
		},
	},
	"fg": {
		CommandName: "fg",
		Summary:     "Bring a job to the foreground.",
		Description: "The `fg` command resumes a job that was suspended or running in the background and brings it to the foreground.",
		Examples: []Example{
			{Command: "fg %1", Explanation: "Brings job number 1 to the foreground."},
		},
	},
	"bg": {
		CommandName: "bg",
		Summary:     "Send a job to the background.",
		Description: "The `bg` command resumes a suspended job and runs it in the background.",
		Examples: []Example{
			{Command: "bg %1", Explanation: "Resumes suspended job number 1 in the background."},
		},
	},
	"jobs": {
		CommandName: "jobs",
		Summary:     "List active jobs.",
		Description: "The `jobs` command displays the status of jobs started in the current shell session.",
		Examples: []Example{
			{Command: "jobs -l", Explanation: "Lists active jobs along with their process IDs."},
		},
	},
	"disown": {
		CommandName: "disown",
		Summary:     "Remove a job from the shell's job control.",
		Description: "`disown` removes a job from the job table, so it is no longer managed by the shell. This is often used with `nohup` to keep a process running after logging out.",
		Examples: []Example{
			{Command: "disown %1", Explanation: "Disowns job number 1."},
		},
	},
	"nohup": {
		CommandName: "nohup",
		Summary:     "Run a command immune to hangups.",
		Description: "The `nohup` command runs a command that will not be terminated when the user logs out. Output is typically redirected to a `nohup.out` file.",
		Examples: []Example{
			{Command: "nohup ./my_long_script.sh &", Explanation: "Runs the script in the background and prevents it from being killed on logout."},
		},
	},
	"screen": {
		CommandName: "screen",
		Summary:     "Screen manager with VT100/ANSI terminal emulation.",
		Description: "`screen` is a terminal multiplexer that allows you to manage multiple terminal sessions from a single window. You can detach from a session and reattach later, keeping processes running.",
		Examples: []Example{
			{Command: "screen", Explanation: "Starts a new screen session."},
			{Command: "screen -ls", Explanation: "Lists running screen sessions."},
			{Command: "screen -r", Explanation: "Reattaches to a detached screen session."},
		},
	},
	"tmux": {
		CommandName: "tmux",
		Summary:     "Terminal multiplexer.",
		Description: "`tmux` is a modern terminal multiplexer similar to `screen`. It allows for multiple terminals to be created, accessed, and controlled from a single screen. It is highly configurable.",
		Examples: []Example{
			{Command: "tmux new -s my_session", Explanation: "Starts a new tmux session named `my_session`."},
			{Command: "tmux ls", Explanation: "Lists running tmux sessions."},
			{Command: "tmux attach -t my_session", Explanation: "Attaches to the session named `my_session`."},
		},
	},
	"dd": {
		CommandName: "dd",
		Summary:     "Convert and copy a file.",
		Description: "`dd` is a powerful utility for low-level copying and conversion of data. It is often used for tasks like creating disk images or bootable USB drives. Be extremely careful with this command, as it can easily destroy data.",
		Examples: []Example{
			{Command: "sudo dd if=/dev/sda of=~/disk_image.img", Explanation: "Creates a full disk image of `/dev/sda`."},
			{Command: "dd if=/dev/zero of=file.txt bs=1M count=10", Explanation: "Creates a 10MB file filled with zeros."},
		},
	},
	"mkfs": {
		CommandName: "mkfs",
		Summary:     "Build a Linux filesystem.",
		Description: "`mkfs` is used to create a filesystem on a device, usually a disk partition. It is a frontend for various filesystem-specific builders (e.g., `mkfs.ext4`).",
		Examples: []Example{
			{Command: "sudo mkfs.ext4 /dev/sdb1", Explanation: "Creates an ext4 filesystem on the partition `/dev/sdb1`."},
		},
	},
	"fsck": {
		CommandName: "fsck",
		Summary:     "Check and repair a Linux filesystem.",
		Description: "`fsck` (file system consistency check) is a utility used to check for and optionally repair errors in filesystems.",
		Examples: []Example{
			{Command: "sudo fsck /dev/sdb1", Explanation: "Checks the filesystem on `/dev/sdb1` for errors. The partition must be unmounted first."},
		},
	},
}
