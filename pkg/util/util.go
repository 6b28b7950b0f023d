package util

// ReverseG. balik urutan arr in place dan return arr, dipakai setelah backtrack parent pointer.
func ReverseG[T any](arr []T) []T {
	for i, j := 0, len(arr)-1; i < j; i, j = i+1, j-1 {
		arr[i], arr[j] = arr[j], arr[i]
	}
	return arr
}
