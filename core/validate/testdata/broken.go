package textutil

func Join(parts []string string {
